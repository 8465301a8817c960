package integrators

import "github.com/san-kum/gravsim/internal/dynamo"

// Verlet is velocity Verlet: two acceleration samples per step.
type Verlet struct{}

func NewVerlet() *Verlet {
	return &Verlet{}
}

func (v *Verlet) Name() string { return "verlet" }

func (v *Verlet) Step(pos, vel dynamo.Vec2, acc dynamo.AccelFunc, dt float64) (dynamo.Vec2, dynamo.Vec2) {
	a0 := acc(pos)
	dt2 := dt * dt

	next := dynamo.Vec2{
		X: pos.X + vel.X*dt + 0.5*a0.X*dt2,
		Y: pos.Y + vel.Y*dt + 0.5*a0.Y*dt2,
	}

	a1 := acc(next)
	halfDt := 0.5 * dt
	vel = dynamo.Vec2{
		X: vel.X + (a0.X+a1.X)*halfDt,
		Y: vel.Y + (a0.Y+a1.Y)*halfDt,
	}
	return next, vel
}
