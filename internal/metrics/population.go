package metrics

import "github.com/san-kum/gravsim/internal/physics"

// Survival is the fraction of particles still alive at the last frame.
type Survival struct {
	name  string
	value float64
	seen  bool
}

func NewSurvival() *Survival {
	return &Survival{name: "survival"}
}

func (s *Survival) Name() string { return s.name }

func (s *Survival) Observe(frame int, sources []*physics.GravitySource, particles []*physics.Particle) {
	s.seen = true
	if len(particles) == 0 {
		s.value = 0
		return
	}
	alive := 0
	for _, p := range particles {
		if p.Alive() {
			alive++
		}
	}
	s.value = float64(alive) / float64(len(particles))
}

func (s *Survival) Value() float64 {
	if !s.seen {
		return 1.0
	}
	return s.value
}

func (s *Survival) Reset() {
	s.value = 0
	s.seen = false
}

// Captures counts particles that are circling or dead at the last frame.
type Captures struct {
	name  string
	count int
}

func NewCaptures() *Captures {
	return &Captures{name: "captures"}
}

func (c *Captures) Name() string { return c.name }

func (c *Captures) Observe(frame int, sources []*physics.GravitySource, particles []*physics.Particle) {
	c.count = 0
	for _, p := range particles {
		if p.Circling() || !p.Alive() {
			c.count++
		}
	}
}

func (c *Captures) Value() float64 { return float64(c.count) }

func (c *Captures) Reset() { c.count = 0 }

// OnScreen is the average fraction of live particles inside the window.
type OnScreen struct {
	name          string
	width, height float64
	total         float64
	samples       int
}

func NewOnScreen(width, height int) *OnScreen {
	return &OnScreen{name: "on_screen", width: float64(width), height: float64(height)}
}

func (o *OnScreen) Name() string { return o.name }

func (o *OnScreen) Observe(frame int, sources []*physics.GravitySource, particles []*physics.Particle) {
	alive, inside := 0, 0
	for _, p := range particles {
		if !p.Alive() {
			continue
		}
		alive++
		pos := p.Position()
		if pos.X >= 0 && pos.X <= o.width && pos.Y >= 0 && pos.Y <= o.height {
			inside++
		}
	}
	if alive == 0 {
		return
	}
	o.total += float64(inside) / float64(alive)
	o.samples++
}

func (o *OnScreen) Value() float64 {
	if o.samples == 0 {
		return 1.0
	}
	return o.total / float64(o.samples)
}

func (o *OnScreen) Reset() {
	o.total = 0
	o.samples = 0
}
