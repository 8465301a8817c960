package metrics

import (
	"github.com/san-kum/gravsim/internal/physics"
)

// Energy averages the specific orbital energy (v^2/2 - sum strength/r)
// of live particles over all observed frames.
type Energy struct {
	name    string
	total   float64
	samples int
}

func NewEnergy() *Energy {
	return &Energy{name: "energy"}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(frame int, sources []*physics.GravitySource, particles []*physics.Particle) {
	sum, n := 0.0, 0
	for _, p := range particles {
		if !p.Alive() {
			continue
		}
		sum += SpecificEnergy(p, sources)
		n++
	}
	if n == 0 {
		return
	}
	e.total += sum / float64(n)
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

func (e *Energy) Reset() {
	e.total = 0
	e.samples = 0
}

// SpecificEnergy is the kinetic plus potential energy per unit mass.
func SpecificEnergy(p *physics.Particle, sources []*physics.GravitySource) float64 {
	ke := 0.5 * p.Velocity().LenSq()
	pe := 0.0
	for _, s := range sources {
		r := p.Position().Dist(s.Position())
		if r > 0 {
			pe -= s.Strength() / r
		}
	}
	return ke + pe
}
