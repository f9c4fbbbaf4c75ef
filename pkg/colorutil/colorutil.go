// Package colorutil provides shared color utilities for drawing overlays.
package colorutil

import (
	"image/color"
)

// Common overlay colors used throughout the application.
var (
	Black   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Cyan    = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Blue    = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Green   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Gray    = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// Lighten moves a color toward white by the given fraction (0..1).
// Used for hover states on selectable geometry.
func Lighten(c color.RGBA, frac float64) color.RGBA {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return color.RGBA{
		R: blend(c.R, 255, frac),
		G: blend(c.G, 255, frac),
		B: blend(c.B, 255, frac),
		A: c.A,
	}
}

// Darken moves a color toward black by the given fraction (0..1).
func Darken(c color.RGBA, frac float64) color.RGBA {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return color.RGBA{
		R: blend(c.R, 0, frac),
		G: blend(c.G, 0, frac),
		B: blend(c.B, 0, frac),
		A: c.A,
	}
}

func blend(from, to uint8, frac float64) uint8 {
	return uint8(float64(from) + (float64(to)-float64(from))*frac)
}
