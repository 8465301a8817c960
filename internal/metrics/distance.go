package metrics

import (
	"math"

	"github.com/san-kum/gravsim/internal/physics"
)

// Distance follows one particle and records its distance to the nearest
// source every frame. Value is the closest approach.
type Distance struct {
	name    string
	index   int
	series  []float64
	closest float64
}

func NewDistance(index int) *Distance {
	return &Distance{name: "closest_approach", index: index, closest: math.Inf(1)}
}

func (d *Distance) Name() string { return d.name }

func (d *Distance) Observe(frame int, sources []*physics.GravitySource, particles []*physics.Particle) {
	if d.index < 0 || d.index >= len(particles) {
		return
	}
	p := particles[d.index]
	if !p.Alive() {
		return
	}
	r := Nearest(p, sources)
	d.series = append(d.series, r)
	d.closest = math.Min(d.closest, r)
}

func (d *Distance) Value() float64 {
	if math.IsInf(d.closest, 1) {
		return 0
	}
	return d.closest
}

func (d *Distance) Reset() {
	d.series = nil
	d.closest = math.Inf(1)
}

// Series returns the per-frame distances recorded so far.
func (d *Distance) Series() []float64 { return d.series }

// Nearest returns the distance from p to the closest source.
func Nearest(p *physics.Particle, sources []*physics.GravitySource) float64 {
	best := math.Inf(1)
	for _, s := range sources {
		best = math.Min(best, p.Position().Dist(s.Position()))
	}
	return best
}
