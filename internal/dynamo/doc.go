// Package dynamo provides the core primitives shared by the gravity
// simulation packages.
//
//   - [Vec2]: a 2D float vector with value semantics
//   - [Integrator]: advances a position/velocity pair by one step
//   - [AccelFunc]: the acceleration field an integrator samples
//   - Domain errors for setup validation and numerical failures
//
// # Example
//
//	acc := func(p dynamo.Vec2) dynamo.Vec2 { return src.Position().Sub(p).Scale(0.1) }
//	pos, vel = integrators.NewEuler().Step(pos, vel, acc, 1)
//
// # Thread Safety
//
// Values in this package are immutable and safe to share. Integrators may
// hold scratch state and are NOT safe for concurrent use.
package dynamo
