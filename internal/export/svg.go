package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/palette"
	"github.com/san-kum/gravsim/internal/physics"
)

// SceneToSVG renders the sources, live particles and their trails in
// window coordinates. Capture rings are drawn when showCapture is set.
func SceneToSVG(sources []*physics.GravitySource, particles []*physics.Particle, width, height int, showCapture bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#000000"/>
`, width, height, width, height))

	for _, p := range particles {
		if !p.Alive() || p.Trail().Len() < 2 {
			continue
		}
		sb.WriteString(trailPath(p.Trail().Slice(), palette.Hex(p.Color())))
	}

	for _, s := range sources {
		c := s.Center()
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="#ffffff"/>
`, c.X, c.Y, s.Radius()))
		if showCapture {
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="#ffffff" stroke-opacity="0.4"/>
`, c.X, c.Y, s.CaptureRadius()))
		}
	}

	for _, p := range particles {
		if !p.Alive() {
			continue
		}
		c := p.Center()
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, c.X, c.Y, physics.ParticleRadius, palette.Hex(p.Color())))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func trailPath(points []dynamo.Vec2, stroke string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-opacity="0.5" stroke-width="1" d="M`, stroke))
	for i, p := range points {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", p.X, p.Y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", p.X, p.Y))
		}
	}
	sb.WriteString(`"/>
`)
	return sb.String()
}
