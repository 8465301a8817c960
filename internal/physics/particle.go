package physics

import (
	"image/color"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/trail"
)

// ParticleRadius is the display radius of a particle.
const ParticleRadius = 5.0

// Transition reports a state change caused by one update.
type Transition int

const (
	NoTransition Transition = iota
	Captured
	Died
)

func (t Transition) String() string {
	switch t {
	case Captured:
		return "captured"
	case Died:
		return "died"
	}
	return "none"
}

type Particle struct {
	pos      dynamo.Vec2
	vel      dynamo.Vec2
	color    color.RGBA
	alive    bool
	circling bool
	trail    *trail.Ring[dynamo.Vec2]
}

func NewParticle(x, y, vx, vy float64) *Particle {
	return &Particle{
		pos:   dynamo.V(x, y),
		vel:   dynamo.V(vx, vy),
		color: color.RGBA{255, 255, 255, 255},
		alive: true,
		trail: trail.NewRing[dynamo.Vec2](0),
	}
}

func (p *Particle) Position() dynamo.Vec2 { return p.pos }
func (p *Particle) Velocity() dynamo.Vec2 { return p.vel }
func (p *Particle) Color() color.RGBA     { return p.color }
func (p *Particle) Alive() bool           { return p.alive }
func (p *Particle) Circling() bool        { return p.circling }

func (p *Particle) SetColor(c color.RGBA) { p.color = c }

// Center is the on-screen centre of the particle's disc; see
// GravitySource.Center.
func (p *Particle) Center() dynamo.Vec2 {
	return dynamo.Vec2{X: p.pos.X + ParticleRadius, Y: p.pos.Y + ParticleRadius}
}

func (p *Particle) Trail() *trail.Ring[dynamo.Vec2] { return p.trail }

// SetTrailCapacity replaces the trail with an empty one of capacity n.
func (p *Particle) SetTrailCapacity(n int) {
	p.trail = trail.NewRing[dynamo.Vec2](n)
}

// Kill marks the particle dead without an update.
func (p *Particle) Kill() { p.alive = false }

// Valid reports whether position and velocity are finite.
func (p *Particle) Valid() bool {
	return p.pos.IsValid() && p.vel.IsValid()
}

// UpdatePhysics applies one update against src. Dead particles are left
// untouched.
func (p *Particle) UpdatePhysics(src *GravitySource, rules Rules) Transition {
	if !p.alive {
		return NoTransition
	}

	tr := NoTransition
	if rules.Capture {
		r := p.pos.Dist(src.Position())
		if r <= src.CaptureRadius() && !p.circling {
			p.circling = true
			tr = Captured
		}
		if r <= src.Radius() {
			p.alive = false
			return Died
		}
	}

	if rules.Capture && p.circling {
		dir, mag := src.Pull(p.pos, rules.Singularity)
		p.vel = rules.Motion.Velocity(p.vel, dir, mag*rules.Dt)
		p.pos = dynamo.Vec2{X: p.pos.X + p.vel.X*rules.Dt, Y: p.pos.Y + p.vel.Y*rules.Dt}
	} else {
		acc := func(at dynamo.Vec2) dynamo.Vec2 { return src.Accel(at, rules.Singularity) }
		p.pos, p.vel = rules.Integrator.Step(p.pos, p.vel, acc, rules.Dt)
	}

	if rules.Capture {
		p.trail.Push(p.Center())
	}
	return tr
}
