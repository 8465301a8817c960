package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/integrators"
)

// SingularityPolicy decides the distance used by the inverse-square law.
// Returning false means the update applies no force.
type SingularityPolicy interface {
	Name() string
	Distance(r float64) (float64, bool)
}

// ZeroForce drops the force entirely below MinDistance.
type ZeroForce struct {
	MinDistance float64
}

func (z ZeroForce) Name() string { return "zero-force" }

func (z ZeroForce) Distance(r float64) (float64, bool) {
	if r == 0 || r < z.MinDistance {
		return 0, false
	}
	return r, true
}

// ClampDistance evaluates the force at MinDistance for any closer point.
// A point exactly on the source has no direction and gets no force.
type ClampDistance struct {
	MinDistance float64
}

func (c ClampDistance) Name() string { return "clamp" }

func (c ClampDistance) Distance(r float64) (float64, bool) {
	if r == 0 {
		return 0, false
	}
	if r < c.MinDistance {
		return c.MinDistance, true
	}
	return r, true
}

// MotionPolicy produces the velocity of a circling particle. dir and mag
// are the unit pull direction and the inverse-square magnitude at the
// particle's position.
type MotionPolicy interface {
	Name() string
	Velocity(vel, dir dynamo.Vec2, mag float64) dynamo.Vec2
}

// HeadingBoost keeps the current heading and adds the scalar pull
// magnitude to each axis of the rebuilt velocity. It is a visual effect,
// not a physical model: the boost ignores where the source is.
type HeadingBoost struct{}

func (HeadingBoost) Name() string { return "heading-boost" }

func (HeadingBoost) Velocity(vel, dir dynamo.Vec2, mag float64) dynamo.Vec2 {
	angle := math.Atan2(vel.Y, vel.X)
	speed := vel.Len()
	return dynamo.Vec2{
		X: speed*math.Cos(angle) + mag,
		Y: speed*math.Sin(angle) + mag,
	}
}

// GravityPull applies the ordinary inverse-square update, so capture only
// affects bookkeeping.
type GravityPull struct{}

func (GravityPull) Name() string { return "gravity" }

func (GravityPull) Velocity(vel, dir dynamo.Vec2, mag float64) dynamo.Vec2 {
	return dynamo.Vec2{X: vel.X + dir.X*mag, Y: vel.Y + dir.Y*mag}
}

func SingularityByName(name string, minDistance float64) (SingularityPolicy, error) {
	switch name {
	case "zero-force", "":
		return ZeroForce{MinDistance: minDistance}, nil
	case "clamp":
		return ClampDistance{MinDistance: minDistance}, nil
	}
	return nil, fmt.Errorf("singularity policy %q: %w", name, dynamo.ErrUnknownName)
}

func MotionByName(name string) (MotionPolicy, error) {
	switch name {
	case "heading-boost", "":
		return HeadingBoost{}, nil
	case "gravity":
		return GravityPull{}, nil
	}
	return nil, fmt.Errorf("capture policy %q: %w", name, dynamo.ErrUnknownName)
}

// Rules bundles everything an update consults besides the source.
type Rules struct {
	Integrator  dynamo.Integrator
	Singularity SingularityPolicy
	Motion      MotionPolicy
	Capture     bool
	Dt          float64
}

// DefaultRules reproduces the plain gravity loop: Euler, unit timestep,
// no capture.
func DefaultRules() Rules {
	return Rules{
		Integrator:  integrators.NewEuler(),
		Singularity: ZeroForce{MinDistance: 1.0},
		Motion:      HeadingBoost{},
		Capture:     false,
		Dt:          1.0,
	}
}
