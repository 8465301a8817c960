package config

import "sort"

var Presets = map[string]*Config{
	"original": DefaultConfig(),
	"capture": func() *Config {
		c := DefaultConfig()
		c.Name = "capture"
		c.Capture = true
		c.TrailCapacity = 120
		c.Sources = []SourceConfig{{X: 800, Y: 500, Strength: DefaultStrength}}
		c.Particles = ParticleConfig{Count: 300, X: 900, Y: 700, VX: 4, VY: 0.1, VYSpread: 0.1}
		return c
	}(),
	"single": func() *Config {
		c := DefaultConfig()
		c.Name = "single"
		c.Sources = []SourceConfig{{X: 500, Y: 500, Strength: DefaultStrength}}
		c.Particles = ParticleConfig{Count: 1, X: 600, Y: 700, VX: 4, VY: 0.1}
		return c
	}(),
	"binary": func() *Config {
		c := DefaultConfig()
		c.Name = "binary"
		c.Capture = true
		c.TrailCapacity = 60
		c.Sources = []SourceConfig{
			{X: 600, Y: 500, Strength: 5000},
			{X: 1000, Y: 500, Strength: 5000},
		}
		c.Particles = ParticleConfig{Count: 500, X: 800, Y: 200, VX: 0.5, VY: 0, VYSpread: 1.5}
		return c
	}(),
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
