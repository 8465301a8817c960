package integrators

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/gravsim/internal/dynamo"
)

// spring is a unit harmonic oscillator: a = -p.
func spring(p dynamo.Vec2) dynamo.Vec2 { return p.Scale(-1) }

func TestEulerRecurrence(t *testing.T) {
	integ := NewEuler()
	constAcc := func(dynamo.Vec2) dynamo.Vec2 { return dynamo.V(1, -2) }

	pos, vel := integ.Step(dynamo.V(10, 10), dynamo.V(3, 0), constAcc, 1)

	if vel != dynamo.V(4, -2) {
		t.Errorf("velocity: got %v, want (4, -2)", vel)
	}
	if pos != dynamo.V(14, 8) {
		t.Errorf("position: got %v, want (14, 8)", pos)
	}
}

func TestVerletAccuracy(t *testing.T) {
	integ := NewVerlet()

	pos, vel := dynamo.V(1, 0), dynamo.V(0, 0)
	dt := 0.01
	steps := 100
	for i := 0; i < steps; i++ {
		pos, vel = integ.Step(pos, vel, spring, dt)
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(pos.X-expectedX) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", pos.X, expectedX)
	}
	if math.Abs(vel.X-expectedV) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", vel.X, expectedV)
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		integ, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q): %v", name, err)
		}
		if integ.Name() != name {
			t.Errorf("ByName(%q).Name() = %q", name, integ.Name())
		}
	}

	if _, err := ByName("rk4"); !errors.Is(err, dynamo.ErrUnknownName) {
		t.Errorf("expected ErrUnknownName, got %v", err)
	}
}

func BenchmarkEuler(b *testing.B) {
	integ := NewEuler()
	pos, vel := dynamo.V(1, 0), dynamo.V(0, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pos, vel = integ.Step(pos, vel, spring, 0.01)
	}
}

func BenchmarkVerlet(b *testing.B) {
	integ := NewVerlet()
	pos, vel := dynamo.V(1, 0), dynamo.V(0, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pos, vel = integ.Step(pos, vel, spring, 0.01)
	}
}
