// Package escape implements the quadratic escape-time iteration behind
// Mandelbrot and Julia images.
package escape

// Count applies z ← z*z + c starting from z0, counting applications, and
// stops once the count reaches maxIter or z leaves the radius-2 disk
// (checked as |z|² > 4 before each step, so a seed already outside the
// disk returns 0). A returned count equal to maxIter means the orbit did
// not escape within the bound.
func Count(z0, c complex128, maxIter int) int {
	z := z0

	n := 0
	for n < maxIter && real(z)*real(z)+imag(z)*imag(z) <= 4.0 {
		z = z*z + c
		n++
	}

	return n
}
