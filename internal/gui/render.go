package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/physics"
)

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func vec(v dynamo.Vec2) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}

func (a *App) drawSources() {
	capture := a.Sim.Rules().Capture
	for _, s := range a.Sim.Sources() {
		c := vec(s.Center())
		rl.DrawCircleV(c, float32(s.Radius()), ColSource)
		if capture {
			rl.DrawCircleLines(int32(c.X), int32(c.Y), float32(s.CaptureRadius()), ColRing)
		}
	}
}

func (a *App) drawParticles() {
	for _, p := range a.Sim.Particles() {
		if !p.Alive() {
			continue
		}
		rl.DrawCircleV(vec(p.Center()), physics.ParticleRadius, toRL(p.Color()))
	}
}

func (a *App) drawTrails() {
	for _, p := range a.Sim.Particles() {
		tr := p.Trail()
		if !p.Alive() || tr.Len() < 2 {
			continue
		}
		col := toRL(p.Color())
		col.A = trailAlpha

		prev := vec(tr.At(0))
		tr.Do(func(i int, pt dynamo.Vec2) {
			if i == 0 {
				return
			}
			cur := vec(pt)
			rl.DrawLineV(prev, cur, col)
			prev = cur
		})
	}
}
