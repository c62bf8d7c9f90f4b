// Command fractal renders a Mandelbrot or Julia set at a capture
// resolution, resamples it to the output resolution with a Lanczos filter,
// and writes it as a PNG.
package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"strconv"

	"github.com/nfnt/resize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/willbeason/escape-fractal/pkg/escape"
	"github.com/willbeason/escape-fractal/pkg/palette"
	"github.com/willbeason/escape-fractal/pkg/plane"
	"github.com/willbeason/escape-fractal/pkg/render"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use: "fractal <output_file> <width>x<height> <capture_width>x<capture_height>" +
			" <max_iter> <scale> [<fractal_type> <c>]",
		// Argument-count checking happens in runCmd: the wrong count
		// prints usage and exits successfully rather than failing.
		Args: cobra.ArbitraryArgs,
		RunE: runCmd,
	}

	// Flags must precede the positional arguments: a julia parameter such
	// as "-0.7,0.27015" would otherwise be read as a flag group.
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().Float64("zoom", 1.0, "magnification of the viewed window")
	cmd.Flags().String("pan", "0,0", "plane point at the center of the view, as re,im")
	cmd.Flags().String("scheme", "rainbow", "color scheme: rainbow, grayscale or blackandwhite")
	cmd.Flags().Int("workers", 0, "render goroutines; 0 uses all CPUs")

	return cmd
}

func runCmd(cmd *cobra.Command, args []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	if len(args) != 5 && len(args) != 7 {
		fmt.Fprintln(cmd.OutOrStdout(), "Usage:", cmd.UseLine())
		return nil
	}

	outputFile := args[0]

	width, height, err := parseResolution(args[1])
	if err != nil {
		return fmt.Errorf("invalid resolution %q: %w", args[1], err)
	}
	if width == 0 || height == 0 {
		return fmt.Errorf("invalid resolution %q: dimensions must be positive", args[1])
	}

	capWidth, capHeight, err := parseResolution(args[2])
	if err != nil {
		return fmt.Errorf("invalid capture size %q: %w", args[2], err)
	}

	maxIter, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Errorf("invalid max_iter %q: %w", args[3], err)
	}

	scale, err := strconv.ParseFloat(args[4], 64)
	if err != nil {
		return fmt.Errorf("invalid scale %q: %w", args[4], err)
	}

	fractal := escape.Fractal{Kind: escape.Mandelbrot}
	if len(args) == 7 {
		fractal.Kind, err = escape.ParseKind(args[5])
		if err != nil {
			return fmt.Errorf("invalid fractal type: %w", err)
		}

		// <c> is always present in this form but only julia reads it.
		if fractal.Kind == escape.Julia {
			fractal.C, err = escape.ParseComplex(args[6])
			if err != nil {
				return fmt.Errorf("invalid complex number: %w", err)
			}
		}
	}

	zoom, err := cmd.Flags().GetFloat64("zoom")
	if err != nil {
		return err
	}

	panArg, err := cmd.Flags().GetString("pan")
	if err != nil {
		return err
	}
	pan, err := escape.ParseComplex(panArg)
	if err != nil {
		return fmt.Errorf("invalid --pan: %w", err)
	}

	schemeArg, err := cmd.Flags().GetString("scheme")
	if err != nil {
		return err
	}
	scheme, err := palette.ParseScheme(schemeArg)
	if err != nil {
		return fmt.Errorf("invalid --scheme: %w", err)
	}

	workers, err := cmd.Flags().GetInt("workers")
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(capWidth*capHeight,
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription("rendering"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	img, err := render.Draw(render.Params{
		Width:   capWidth,
		Height:  capHeight,
		MaxIter: maxIter,
		View:    plane.Viewport{Scale: scale, Zoom: zoom, Pan: pan},
		Fractal: fractal,
		Scheme:  scheme,
		Workers: workers,
		Progress: func(pixels int) {
			_ = bar.Add(pixels)
		},
	})
	if err != nil {
		return err
	}
	_ = bar.Finish()

	resized := resize.Resize(uint(width), uint(height), img, resize.Lanczos3)

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outputFile, err)
	}
	if err := png.Encode(f, resized); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %s: %w", outputFile, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", outputFile, err)
	}

	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
