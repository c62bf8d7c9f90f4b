// Package palette maps escape counts to colors.
package palette

import (
	"fmt"
	"image/color"
	"math"
)

// Scheme selects the function from normalized escape fraction to RGB.
type Scheme int

const (
	Rainbow Scheme = iota
	Grayscale
)

// Color maps an escape count against its bound to an opaque RGB color.
//
// Points that never escaped (i == maxIter) are black under every scheme.
// Otherwise channels are computed from t = i/maxIter, scaled to 255 and
// truncated toward zero, never rounded; the truncation is observable at
// boundary values and deliberate.
func (s Scheme) Color(i, maxIter int) color.RGBA {
	if i >= maxIter {
		return color.RGBA{A: 0xff}
	}

	t := float64(i) / float64(maxIter)

	if s == Grayscale {
		v := uint8(t * 255.0)
		return color.RGBA{R: v, G: v, B: v, A: 0xff}
	}

	r := math.Pow(t, 0.3)
	g := math.Pow(t, 0.5)
	b := 1.0 - math.Pow(t, 0.7)

	return color.RGBA{
		R: uint8(r * 255.0),
		G: uint8(g * 255.0),
		B: uint8(b * 255.0),
		A: 0xff,
	}
}

// ParseScheme reads a scheme name from the command line.
// "blackandwhite" is an alias for "grayscale".
func ParseScheme(s string) (Scheme, error) {
	switch s {
	case "rainbow":
		return Rainbow, nil
	case "grayscale", "blackandwhite":
		return Grayscale, nil
	}

	return Rainbow, fmt.Errorf("unknown color scheme %q, want rainbow, grayscale or blackandwhite", s)
}
