package dynamo

import (
	"fmt"
	"math"
)

type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Len returns the Euclidean norm.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Dist returns |o - v|.
func (v Vec2) Dist(o Vec2) float64 {
	return o.Sub(v).Len()
}

func (v Vec2) IsValid() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", v.X, v.Y)
}

// AccelFunc returns the acceleration acting on a point at p.
type AccelFunc func(p Vec2) Vec2

// Integrator advances (pos, vel) by dt under the acceleration field acc.
type Integrator interface {
	Name() string
	Step(pos, vel Vec2, acc AccelFunc, dt float64) (Vec2, Vec2)
}
