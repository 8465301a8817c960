package storage

import "github.com/san-kum/gravsim/internal/physics"

// Recorder collects trace rows for a fixed set of particles every
// Every-th frame. It satisfies sim.Observer.
type Recorder struct {
	tracked []int
	every   int
	rows    []TraceRow
}

func NewRecorder(tracked []int, every int) *Recorder {
	if every < 1 {
		every = 1
	}
	return &Recorder{tracked: tracked, every: every}
}

func (r *Recorder) OnStep(frame int, sources []*physics.GravitySource, particles []*physics.Particle) {
	if frame%r.every != 0 {
		return
	}
	for _, idx := range r.tracked {
		if idx < 0 || idx >= len(particles) {
			continue
		}
		p := particles[idx]
		pos, vel := p.Position(), p.Velocity()
		r.rows = append(r.rows, TraceRow{
			Frame:    frame,
			Particle: idx,
			X:        pos.X,
			Y:        pos.Y,
			VX:       vel.X,
			VY:       vel.Y,
			Alive:    p.Alive(),
			Circling: p.Circling(),
		})
	}
}

func (r *Recorder) Rows() []TraceRow { return r.rows }

func (r *Recorder) Tracked() []int { return r.tracked }
