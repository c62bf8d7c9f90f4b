// Package render fills a capture-resolution image with an escape-time
// fractal, evaluating pixels in parallel.
package render

import (
	"fmt"
	"image"
	"runtime"
	"sync"

	"github.com/willbeason/escape-fractal/pkg/escape"
	"github.com/willbeason/escape-fractal/pkg/palette"
	"github.com/willbeason/escape-fractal/pkg/plane"
)

// Params are the immutable inputs of one render pass.
type Params struct {
	// Width and Height are the capture resolution in pixels.
	Width, Height int

	// MaxIter is the escape-time iteration bound.
	MaxIter int

	View    plane.Viewport
	Fractal escape.Fractal
	Scheme  palette.Scheme

	// Workers is the number of render goroutines. 0 uses all CPUs.
	Workers int

	// Progress, if set, is called with the number of newly finished
	// pixels as rows complete. It is advisory only and may be called
	// from multiple goroutines.
	Progress func(pixels int)
}

// Validate rejects parameters that would divide by zero or produce a
// degenerate image.
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("capture resolution must be positive, got %dx%d", p.Width, p.Height)
	}
	if p.MaxIter <= 0 {
		return fmt.Errorf("max_iter must be positive, got %d", p.MaxIter)
	}

	return p.View.Validate()
}

// Draw renders the full capture-resolution buffer.
//
// Every pixel depends only on its own coordinates and the immutable
// Params, so rows are fanned out to Workers goroutines over a channel and
// each row is written by exactly one goroutine. Every cell has been
// written exactly once when Draw returns.
func Draw(p Params) (*image.RGBA, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	workers := p.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))

	rows := make(chan int)
	go func() {
		for y := 0; y < p.Height; y++ {
			rows <- y
		}
		close(rows)
	}()

	wg := sync.WaitGroup{}
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			for y := range rows {
				for x := 0; x < p.Width; x++ {
					c := p.View.At(x, y, p.Width, p.Height)
					n := p.Fractal.Escape(c, p.MaxIter)
					img.SetRGBA(x, y, p.Scheme.Color(n, p.MaxIter))
				}

				if p.Progress != nil {
					p.Progress(p.Width)
				}
			}
			wg.Done()
		}()
	}
	wg.Wait()

	return img, nil
}
