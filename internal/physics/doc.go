// Package physics implements the gravity sources, the particles they pull
// on, and the per-update rules that govern particle motion.
//
//   - [GravitySource]: fixed attractor with strength, display and capture radii
//   - [Particle]: moving point with colour, trail and free/circling/dead state
//   - [Rules]: integrator plus the policies consulted on every update
//   - [SingularityPolicy]: what the inverse-square law does near r = 0
//   - [MotionPolicy]: how a captured particle's velocity is produced
//
// # Update
//
// One call to [Particle.UpdatePhysics] applies a single source:
//
//	d = source - p, r = |d|, n = d/r
//	v += strength/r^2 * n
//	p += v
//
// With capture enabled a particle within [GravitySource.CaptureRadius]
// starts circling, and one within [GravitySource.Radius] dies.
package physics
