// Package palette maps scalar values onto the particle colour gradient.
package palette

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	Blue = colorful.Color{R: 0, G: 0, B: 1}
	Teal = colorful.Color{R: 0, G: 1, B: 1}
)

// Map clamps value to [0, 1] and interpolates blue -> teal -> blue, with
// teal reached at 0.5.
func Map(value float64) color.RGBA {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}

	var c colorful.Color
	if value < 0.5 {
		c = Blue.BlendRgb(Teal, value*2)
	} else {
		c = Teal.BlendRgb(Blue, (value-0.5)*2)
	}

	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// ForIndex returns the colour of particle i out of n.
func ForIndex(i, n int) color.RGBA {
	if n <= 0 {
		return Map(0)
	}
	return Map(float64(i) / float64(n))
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}
