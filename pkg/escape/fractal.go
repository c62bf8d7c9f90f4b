package escape

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind selects which quadratic family a render draws.
type Kind int

const (
	Mandelbrot Kind = iota
	Julia
)

// A Fractal is the family chosen for one render: the Kind tag plus the
// fixed Julia parameter. C is ignored for Mandelbrot.
type Fractal struct {
	Kind Kind
	C    complex128
}

// Escape returns the escape count for the plane point p.
//
// Mandelbrot iterates from the origin with p as the additive parameter;
// Julia iterates from p with the fixed parameter C.
func (f Fractal) Escape(p complex128, maxIter int) int {
	if f.Kind == Julia {
		return Count(p, f.C, maxIter)
	}

	return Count(0, p, maxIter)
}

// ParseKind reads a fractal-type token from the command line.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "mandelbrot":
		return Mandelbrot, nil
	case "julia":
		return Julia, nil
	}

	return Mandelbrot, fmt.Errorf("unknown fractal type %q, want mandelbrot or julia", s)
}

// ParseComplex reads a complex number formatted as "re,im".
func ParseComplex(s string) (complex128, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, fmt.Errorf("complex number %q must be formatted as re,im", s)
	}

	re, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, fmt.Errorf("real part of %q: %w", s, err)
	}

	im, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, fmt.Errorf("imaginary part of %q: %w", s, err)
	}

	return complex(re, im), nil
}
