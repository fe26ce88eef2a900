package img2block

import (
	"fmt"
	"image"
	"math"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/casparb/img2block/imageutil"
)

// Renderer holds the configuration for converting images into block
// character grids. A Renderer is cheap to construct and safe for
// concurrent use: all of its state is read-only during rendering.
type Renderer struct {
	// Lines is the output height in character rows.
	Lines int

	// Contrast scales intensities away from mid-gray before matching.
	// 1.0 leaves the field unchanged.
	Contrast float64

	// Brightness is added to the grayscale channel before alpha
	// compositing, so brightening a transparent pixel still composites
	// to dark. Negative darkens, positive lightens.
	Brightness float64

	// Workers bounds the number of goroutines sampling rows. Values
	// below 2 render sequentially.
	Workers int

	// Ramp selects the glyph mapping strategy.
	Ramp Ramp
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// NewRenderer creates a Renderer with the given options.
// Defaults: Lines=40, Contrast=1.0, Brightness=0.0, Workers=1,
// Ramp=RampQuadrant.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		Lines:    40,
		Contrast: 1.0,
		Workers:  1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithLines sets the output height in character rows.
func WithLines(lines int) RendererOption {
	return func(r *Renderer) {
		r.Lines = lines
	}
}

// WithContrast sets the contrast boost strength.
func WithContrast(strength float64) RendererOption {
	return func(r *Renderer) {
		r.Contrast = strength
	}
}

// WithBrightness sets the additive brightness shift.
func WithBrightness(delta float64) RendererOption {
	return func(r *Renderer) {
		r.Brightness = delta
	}
}

// WithWorkers sets the row sampling goroutine limit.
func WithWorkers(n int) RendererOption {
	return func(r *Renderer) {
		r.Workers = n
	}
}

// WithRamp sets the glyph mapping strategy.
func WithRamp(ramp Ramp) RendererOption {
	return func(r *Renderer) {
		r.Ramp = ramp
	}
}

// RenderFile loads the image at path and renders it. Load and decode
// failures are reported as *ImageLoadError.
func (r *Renderer) RenderFile(path string) (string, error) {
	img, err := imageutil.LoadImage(path)
	if err != nil {
		return "", &ImageLoadError{Path: path, Err: err}
	}
	return r.Render(img)
}

// Render converts img into a grid of exactly r.Lines rows of glyphs,
// joined by newlines. The column count is derived from the source
// aspect ratio: round(lines * aspect * 2), the factor of 2 compensating
// for character cells being roughly twice as tall as wide.
func (r *Renderer) Render(img image.Image) (string, error) {
	field, cols, err := r.BrightnessField(img)
	if err != nil {
		return "", err
	}

	rows := make([]string, r.Lines)
	if cols == 0 {
		// An extremely narrow image rounds to zero columns; the grid
		// is still r.Lines rows, each empty.
		return strings.Join(rows, "\n"), nil
	}

	cellW := float64(cols*2) / float64(cols)
	cellH := float64(r.Lines*2) / float64(r.Lines)

	renderRow := func(y int) string {
		var row strings.Builder
		row.Grow(cols * 3)
		for x := 0; x < cols; x++ {
			row.WriteRune(r.glyphFor(field, x, y, cellW, cellH))
		}
		return row.String()
	}

	if r.Workers > 1 {
		// Rows are independent; the palette is read-only shared state.
		var g errgroup.Group
		g.SetLimit(r.Workers)
		for y := 0; y < r.Lines; y++ {
			y := y
			g.Go(func() error {
				rows[y] = renderRow(y)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return "", err
		}
	} else {
		for y := 0; y < r.Lines; y++ {
			rows[y] = renderRow(y)
		}
	}

	return strings.Join(rows, "\n"), nil
}

// BrightnessField computes the composited, tone-adjusted brightness
// field for img at quadrant resolution, along with the derived column
// count. The field is sized (cols*2) x (Lines*2): 2x supersampling in
// each axis gives one pixel per quadrant.
func (r *Renderer) BrightnessField(img image.Image) ([][]float64, int, error) {
	if r.Lines <= 0 {
		return nil, 0, &InvalidParameterError{Param: "lines", Value: r.Lines}
	}

	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW <= 0 || srcH <= 0 {
		return nil, 0, &InvalidParameterError{
			Param: "image size",
			Value: fmt.Sprintf("%dx%d", srcW, srcH),
		}
	}

	aspect := float64(srcW) / float64(srcH)
	cols := int(math.Round(float64(r.Lines) * aspect * 2))
	if cols == 0 {
		return make([][]float64, r.Lines*2), 0, nil
	}

	src := imageutil.GrayAlphaFromImage(img)
	resized := imageutil.Resize(src, cols*2, r.Lines*2, imageutil.InterpolationLanczos)
	gray, alpha := resized.FloatChannels()

	// The shift goes on the raw gray channel so that a brightened
	// transparent pixel still composites to dark.
	if r.Brightness != 0 {
		shiftField(gray, r.Brightness)
	}
	for y := range gray {
		for x := range gray[y] {
			gray[y][x] *= alpha[y][x]
		}
	}
	adjustContrastField(gray, r.Contrast)

	return gray, cols, nil
}

// glyphFor maps one cell of the brightness field to a glyph according
// to the configured ramp.
func (r *Renderer) glyphFor(field [][]float64, x, y int, cellW, cellH float64) rune {
	sample := SampleCell(field, x, y, cellW, cellH)
	if r.Ramp == RampQuadrant {
		return BestFit(sample)
	}

	ramp, ok := rampGlyphs[r.Ramp]
	if !ok {
		return BestFit(sample)
	}
	mean := (sample[0][0] + sample[0][1] + sample[1][0] + sample[1][1]) / 4
	idx := int(math.Round(mean * float64(len(ramp)-1)))
	if idx < 0 {
		idx = 0
	} else if idx >= len(ramp) {
		idx = len(ramp) - 1
	}
	return ramp[idx]
}
