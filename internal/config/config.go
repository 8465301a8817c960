package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/integrators"
	"github.com/san-kum/gravsim/internal/physics"
)

const (
	DefaultStrength    = 7000.0
	DefaultParticles   = 2000
	DefaultMinDistance = 1.0
	DefaultDt          = 1.0
	DefaultWidth       = 1600
	DefaultHeight      = 1000
	DefaultFPS         = 60
	DefaultTitle       = "Gravity Simulation"
)

type Config struct {
	Name          string         `yaml:"name"`
	Integrator    string         `yaml:"integrator"`
	Dt            float64        `yaml:"dt"`
	Capture       bool           `yaml:"capture"`
	CapturePolicy string         `yaml:"capture_policy"`
	Singularity   string         `yaml:"singularity"`
	MinDistance   float64        `yaml:"min_distance"`
	TrailCapacity int            `yaml:"trail_capacity"`
	Sources       []SourceConfig `yaml:"sources"`
	Particles     ParticleConfig `yaml:"particles"`
	Window        WindowConfig   `yaml:"window"`
}

type SourceConfig struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Strength float64 `yaml:"strength"`
}

// ParticleConfig describes the launch fan: particle i starts at (X, Y)
// with velocity (VX, VY + VYSpread/Count*i).
type ParticleConfig struct {
	Count    int     `yaml:"count"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	VX       float64 `yaml:"vx"`
	VY       float64 `yaml:"vy"`
	VYSpread float64 `yaml:"vy_spread"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:          "original",
		Integrator:    "euler",
		Dt:            DefaultDt,
		CapturePolicy: "heading-boost",
		Singularity:   "zero-force",
		MinDistance:   DefaultMinDistance,
		Sources: []SourceConfig{
			{X: 500, Y: 500, Strength: DefaultStrength},
			{X: 1200, Y: 500, Strength: DefaultStrength},
		},
		Particles: ParticleConfig{
			Count:    DefaultParticles,
			X:        600,
			Y:        700,
			VX:       4,
			VY:       0.1,
			VYSpread: 0.1,
		},
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  DefaultTitle,
			FPS:    DefaultFPS,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Clone() *Config {
	cp := *c
	cp.Sources = append([]SourceConfig(nil), c.Sources...)
	return &cp
}

func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return dynamo.ErrNoSources
	}
	for i, s := range c.Sources {
		if s.Strength <= 0 {
			return fmt.Errorf("source %d strength %v: %w", i, s.Strength, dynamo.ErrParameterBounds)
		}
	}
	if c.Particles.Count < 0 {
		return fmt.Errorf("particle count %d: %w", c.Particles.Count, dynamo.ErrParameterBounds)
	}
	if c.TrailCapacity < 0 {
		return fmt.Errorf("trail capacity %d: %w", c.TrailCapacity, dynamo.ErrParameterBounds)
	}
	if c.MinDistance < 0 {
		return fmt.Errorf("min distance %v: %w", c.MinDistance, dynamo.ErrParameterBounds)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("dt %v: %w", c.Dt, dynamo.ErrParameterBounds)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 || c.Window.FPS <= 0 {
		return fmt.Errorf("window %dx%d@%d: %w", c.Window.Width, c.Window.Height, c.Window.FPS, dynamo.ErrParameterBounds)
	}
	_, err := c.Rules()
	return err
}

// Rules resolves the named integrator and policies.
func (c *Config) Rules() (physics.Rules, error) {
	integ, err := integrators.ByName(c.Integrator)
	if err != nil {
		return physics.Rules{}, err
	}
	sing, err := physics.SingularityByName(c.Singularity, c.MinDistance)
	if err != nil {
		return physics.Rules{}, err
	}
	motion, err := physics.MotionByName(c.CapturePolicy)
	if err != nil {
		return physics.Rules{}, err
	}
	return physics.Rules{
		Integrator:  integ,
		Singularity: sing,
		Motion:      motion,
		Capture:     c.Capture,
		Dt:          c.Dt,
	}, nil
}

// LaunchVelocity returns the initial velocity of particle i.
func (p ParticleConfig) LaunchVelocity(i int) (float64, float64) {
	if p.Count == 0 {
		return p.VX, p.VY
	}
	return p.VX, p.VY + (p.VYSpread/float64(p.Count))*float64(i)
}
