package sim

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/palette"
	"github.com/san-kum/gravsim/internal/physics"
)

// Simulation owns the sources and particles and applies every source to
// every live particle once per frame, sources in order.
type Simulation struct {
	sources   []*physics.GravitySource
	particles []*physics.Particle
	rules     physics.Rules
	frame     int
	errs      []error
	metrics   []Metric
	observers []Observer
	log       hclog.Logger
}

// New builds a simulation from a validated setup.
func New(cfg *config.Config, log hclog.Logger) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid setup %q: %w", cfg.Name, err)
	}
	rules, err := cfg.Rules()
	if err != nil {
		return nil, err
	}

	sources := make([]*physics.GravitySource, 0, len(cfg.Sources))
	for _, sc := range cfg.Sources {
		sources = append(sources, physics.NewGravitySource(sc.X, sc.Y, sc.Strength))
	}

	n := cfg.Particles.Count
	particles := make([]*physics.Particle, 0, n)
	for i := 0; i < n; i++ {
		vx, vy := cfg.Particles.LaunchVelocity(i)
		p := physics.NewParticle(cfg.Particles.X, cfg.Particles.Y, vx, vy)
		p.SetColor(palette.ForIndex(i, n))
		p.SetTrailCapacity(cfg.TrailCapacity)
		particles = append(particles, p)
	}

	s := NewWith(sources, particles, rules, log)
	s.log.Info("simulation ready",
		"setup", cfg.Name,
		"sources", len(sources),
		"particles", n,
		"integrator", rules.Integrator.Name(),
		"capture", rules.Capture,
		"singularity", rules.Singularity.Name(),
	)
	return s, nil
}

// NewWith assembles a simulation from prebuilt parts.
func NewWith(sources []*physics.GravitySource, particles []*physics.Particle, rules physics.Rules, log hclog.Logger) *Simulation {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Simulation{
		sources:   sources,
		particles: particles,
		rules:     rules,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		log:       log.Named("sim"),
	}
}

func (s *Simulation) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulation) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulation) Sources() []*physics.GravitySource { return s.sources }
func (s *Simulation) Particles() []*physics.Particle    { return s.particles }
func (s *Simulation) Rules() physics.Rules              { return s.rules }
func (s *Simulation) Frame() int                        { return s.frame }

// Errors returns the numerical failures seen so far.
func (s *Simulation) Errors() []error { return s.errs }

// Step advances one frame.
func (s *Simulation) Step() {
	for _, src := range s.sources {
		for i, p := range s.particles {
			if !p.Alive() {
				continue
			}
			switch p.UpdatePhysics(src, s.rules) {
			case physics.Captured:
				s.log.Debug("particle captured", "frame", s.frame, "particle", i)
			case physics.Died:
				s.log.Debug("particle died", "frame", s.frame, "particle", i)
			}
			if p.Alive() && !p.Valid() {
				p.Kill()
				err := &dynamo.SimError{Frame: s.frame, Particle: i, Wrapped: dynamo.ErrInvalidState}
				s.errs = append(s.errs, err)
				s.log.Warn("particle state diverged, removing", "frame", s.frame, "particle", i)
			}
		}
	}
	s.frame++

	for _, m := range s.metrics {
		m.Observe(s.frame, s.sources, s.particles)
	}
	for _, obs := range s.observers {
		obs.OnStep(s.frame, s.sources, s.particles)
	}
}

// Run advances frames frames without a window.
func (s *Simulation) Run(ctx context.Context, frames int) (*Result, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("frames must be positive, got %d: %w", frames, dynamo.ErrParameterBounds)
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	start := s.frame
	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return s.result(start), fmt.Errorf("%w: %v", dynamo.ErrContextCanceled, ctx.Err())
		default:
		}
		s.Step()
	}

	res := s.result(start)
	s.log.Info("run finished",
		"frames", res.Frames,
		"alive", res.Stats.Alive(),
		"circling", res.Stats.Circling,
		"dead", res.Stats.Dead,
		"errors", len(res.Errors),
	)
	return res, nil
}

func (s *Simulation) Stats() Stats {
	var st Stats
	for _, p := range s.particles {
		switch {
		case !p.Alive():
			st.Dead++
		case p.Circling():
			st.Circling++
		default:
			st.Free++
		}
	}
	return st
}

func (s *Simulation) result(start int) *Result {
	res := &Result{
		Frames:  s.frame - start,
		Stats:   s.Stats(),
		Metrics: make(map[string]float64, len(s.metrics)),
		Errors:  append([]error(nil), s.errs...),
	}
	for _, m := range s.metrics {
		res.Metrics[m.Name()] = m.Value()
	}
	return res
}
