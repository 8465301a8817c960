package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/gravsim/internal/dynamo"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Sources) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(cfg.Sources))
	}
	if cfg.Sources[0].X != 500 || cfg.Sources[1].X != 1200 {
		t.Errorf("unexpected source positions: %+v", cfg.Sources)
	}
	if cfg.Particles.Count != 2000 {
		t.Errorf("expected 2000 particles, got %d", cfg.Particles.Count)
	}
	if cfg.Window.Width != 1600 || cfg.Window.Height != 1000 || cfg.Window.FPS != 60 {
		t.Errorf("unexpected window: %+v", cfg.Window)
	}
	if cfg.Window.Title != "Gravity Simulation" {
		t.Errorf("unexpected title %q", cfg.Window.Title)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLaunchVelocity(t *testing.T) {
	p := DefaultConfig().Particles

	vx, vy := p.LaunchVelocity(0)
	if vx != 4 || vy != 0.1 {
		t.Errorf("particle 0: got (%v, %v)", vx, vy)
	}

	_, vy = p.LaunchVelocity(1000)
	want := 0.1 + (0.1/2000)*1000
	if vy != want {
		t.Errorf("particle 1000: got vy %v, want %v", vy, want)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("capture")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if !cfg.Capture {
		t.Error("capture preset should enable capture")
	}

	cfg.Sources[0].X = -1
	if Presets["capture"].Sources[0].X == -1 {
		t.Error("GetPreset must return an independent copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValidate(t *testing.T) {
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   error
	}{
		{"no sources", func(c *Config) { c.Sources = nil }, dynamo.ErrNoSources},
		{"zero strength", func(c *Config) { c.Sources[0].Strength = 0 }, dynamo.ErrParameterBounds},
		{"negative count", func(c *Config) { c.Particles.Count = -1 }, dynamo.ErrParameterBounds},
		{"negative trail", func(c *Config) { c.TrailCapacity = -5 }, dynamo.ErrParameterBounds},
		{"negative min distance", func(c *Config) { c.MinDistance = -1 }, dynamo.ErrParameterBounds},
		{"zero dt", func(c *Config) { c.Dt = 0 }, dynamo.ErrParameterBounds},
		{"zero fps", func(c *Config) { c.Window.FPS = 0 }, dynamo.ErrParameterBounds},
		{"unknown integrator", func(c *Config) { c.Integrator = "rk4" }, dynamo.ErrUnknownName},
		{"unknown singularity", func(c *Config) { c.Singularity = "soften" }, dynamo.ErrUnknownName},
		{"unknown capture policy", func(c *Config) { c.CapturePolicy = "spiral" }, dynamo.ErrUnknownName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup.yaml")
	data := []byte(`
name: custom
capture: true
trail_capacity: 42
sources:
  - {x: 100, y: 200, strength: 900}
particles:
  count: 3
  x: 10
  y: 20
  vx: 1
  vy: 2
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Name != "custom" || !cfg.Capture || cfg.TrailCapacity != 42 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if len(cfg.Sources) != 1 || cfg.Sources[0].Strength != 900 {
		t.Errorf("unexpected sources: %+v", cfg.Sources)
	}
	if cfg.Integrator != "euler" || cfg.Window.Width != 1600 {
		t.Error("unset fields should keep defaults")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	orig := GetPreset("binary")
	if err := Save(path, orig); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Name != "binary" || len(got.Sources) != 2 || got.Particles.Count != 500 {
		t.Errorf("round trip lost data: %+v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
