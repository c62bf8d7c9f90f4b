// Package plane maps pixel coordinates onto points in the complex plane.
package plane

import "fmt"

// A Viewport is the window of the complex plane covered by an image.
type Viewport struct {
	// Scale is the width of the plane covered at Zoom 1.
	Scale float64

	// Zoom shrinks the viewed window. 1 views the full Scale;
	// 2 views half of it around Pan.
	Zoom float64

	// Pan is the plane point at the center of the view.
	Pan complex128
}

// At returns the plane point for pixel (x, y) of a width-by-height image.
//
// The center pixel maps to Pan for every Zoom, and at Zoom 1 with Pan at
// the origin this is the plain centered transform
//
//	c = ((x - 0.5*width) * Scale / width, (y - 0.5*height) * Scale / height)
func (v Viewport) At(x, y, width, height int) complex128 {
	re := (float64(x)-0.5*float64(width))*v.Scale/(float64(width)*v.Zoom) + real(v.Pan)
	im := (float64(y)-0.5*float64(height))*v.Scale/(float64(height)*v.Zoom) + imag(v.Pan)

	return complex(re, im)
}

// Validate rejects viewports whose transform would divide by zero or
// collapse the view to a point.
func (v Viewport) Validate() error {
	if v.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", v.Scale)
	}
	if v.Zoom <= 0 {
		return fmt.Errorf("zoom must be positive, got %v", v.Zoom)
	}

	return nil
}
