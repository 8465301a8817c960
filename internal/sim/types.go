package sim

import "github.com/san-kum/gravsim/internal/physics"

// Metric accumulates a scalar over the frames of a run.
type Metric interface {
	Name() string
	Observe(frame int, sources []*physics.GravitySource, particles []*physics.Particle)
	Value() float64
	Reset()
}

// Observer is notified after every frame.
type Observer interface {
	OnStep(frame int, sources []*physics.GravitySource, particles []*physics.Particle)
}

// Stats counts particles per state.
type Stats struct {
	Free     int
	Circling int
	Dead     int
}

func (s Stats) Alive() int { return s.Free + s.Circling }

type Result struct {
	Frames  int
	Stats   Stats
	Metrics map[string]float64
	Errors  []error
}
