package integrators

import "github.com/san-kum/gravsim/internal/dynamo"

// Euler updates velocity from the acceleration at the current position,
// then moves the position by the updated velocity.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "euler" }

func (e *Euler) Step(pos, vel dynamo.Vec2, acc dynamo.AccelFunc, dt float64) (dynamo.Vec2, dynamo.Vec2) {
	a := acc(pos)
	vel = dynamo.Vec2{X: vel.X + a.X*dt, Y: vel.Y + a.Y*dt}
	pos = dynamo.Vec2{X: pos.X + vel.X*dt, Y: pos.Y + vel.Y*dt}
	return pos, vel
}
