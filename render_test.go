package img2block

import (
	"errors"
	"image"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/casparb/img2block/imageutil"
)

func assertUniformGrid(t *testing.T, art string, lines, cols int, glyph rune) {
	t.Helper()
	rows := strings.Split(art, "\n")
	if len(rows) != lines {
		t.Fatalf("Expected %d rows, got %d", lines, len(rows))
	}
	for i, row := range rows {
		if utf8.RuneCountInString(row) != cols {
			t.Errorf("Row %d: expected %d glyphs, got %d",
				i, cols, utf8.RuneCountInString(row))
		}
		for _, r := range row {
			if r != glyph {
				t.Errorf("Row %d: expected all %q, found %q", i, glyph, r)
				break
			}
		}
	}
}

func TestRenderWhiteImage(t *testing.T) {
	// Opaque white composites to 1.0 everywhere, a zero-distance match
	// for the full block.
	img := imageutil.CreateSolidImage(100, 100, 255)
	art, err := NewRenderer(WithLines(5)).Render(img)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	assertUniformGrid(t, art, 5, 10, '█')
}

func TestRenderTransparentImage(t *testing.T) {
	// Fully transparent renders as space regardless of the color
	// channel underneath.
	img := imageutil.CreateTransparentImage(80, 40)
	art, err := NewRenderer(WithLines(4)).Render(img)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	assertUniformGrid(t, art, 4, 16, ' ')
}

func TestRenderTransparentIgnoresBrightness(t *testing.T) {
	// The brightness shift applies before compositing, so brightening
	// cannot resurrect transparent pixels.
	img := imageutil.CreateTransparentImage(40, 40)
	art, err := NewRenderer(WithLines(4), WithBrightness(1.0)).Render(img)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	assertUniformGrid(t, art, 4, 8, ' ')
}

func TestRenderMidGray(t *testing.T) {
	img := imageutil.CreateSolidImage(60, 60, 128)
	art, err := NewRenderer(WithLines(3)).Render(img)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	assertUniformGrid(t, art, 3, 6, '▒')
}

func TestRenderContrastPushesToExtremes(t *testing.T) {
	// 179/255 is about 0.70; a strong contrast boost saturates it.
	img := imageutil.CreateSolidImage(60, 60, 179)
	art, err := NewRenderer(WithLines(3), WithContrast(5.0)).Render(img)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	assertUniformGrid(t, art, 3, 6, '█')
}

func TestRenderGridDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		lines         int
		expectedCols  int
	}{
		{"square", 100, 100, 10, 20},
		{"wide", 200, 100, 10, 40},
		{"tall", 100, 200, 10, 10},
		{"odd aspect", 150, 100, 7, 21},
	}
	for _, test := range tests {
		img := imageutil.CreateGradientImage(test.width, test.height)
		art, err := NewRenderer(WithLines(test.lines)).Render(img)
		if err != nil {
			t.Fatalf("%s: Render failed: %v", test.name, err)
		}
		rows := strings.Split(art, "\n")
		if len(rows) != test.lines {
			t.Errorf("%s: expected %d rows, got %d", test.name, test.lines, len(rows))
		}
		for i, row := range rows {
			if utf8.RuneCountInString(row) != test.expectedCols {
				t.Errorf("%s: row %d has %d glyphs, expected %d",
					test.name, i, utf8.RuneCountInString(row), test.expectedCols)
			}
		}
	}
}

func TestRenderInvalidLines(t *testing.T) {
	img := imageutil.CreateSolidImage(10, 10, 255)
	for _, lines := range []int{0, -1, -40} {
		_, err := NewRenderer(WithLines(lines)).Render(img)
		var paramErr *InvalidParameterError
		if !errors.As(err, &paramErr) {
			t.Errorf("lines=%d: expected InvalidParameterError, got %v", lines, err)
		}
	}
}

func TestRenderZeroAreaImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 0, 0))
	_, err := NewRenderer().Render(img)
	var paramErr *InvalidParameterError
	if !errors.As(err, &paramErr) {
		t.Errorf("Expected InvalidParameterError for empty image, got %v", err)
	}
}

func TestRenderIdempotent(t *testing.T) {
	img := imageutil.CreateGradientImage(120, 80)
	r := NewRenderer(WithLines(8), WithContrast(1.5), WithBrightness(0.1))
	first, err := r.Render(img)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	second, err := r.Render(img)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if first != second {
		t.Error("Rendering the same input twice should be byte-identical")
	}
}

func TestRenderParallelMatchesSequential(t *testing.T) {
	img := imageutil.CreateCheckerboardImage(128, 128, 8)
	sequential, err := NewRenderer(WithLines(16)).Render(img)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	parallel, err := NewRenderer(WithLines(16), WithWorkers(4)).Render(img)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if sequential != parallel {
		t.Error("Parallel rendering should be byte-identical to sequential")
	}
}

func TestRenderRamps(t *testing.T) {
	white := imageutil.CreateSolidImage(60, 60, 255)
	dark := imageutil.CreateTransparentImage(60, 60)
	for _, ramp := range []Ramp{RampVertical, RampHorizontal, RampShade} {
		art, err := NewRenderer(WithLines(3), WithRamp(ramp)).Render(white)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		assertUniformGrid(t, art, 3, 6, '█')

		art, err = NewRenderer(WithLines(3), WithRamp(ramp)).Render(dark)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		assertUniformGrid(t, art, 3, 6, ' ')
	}
}

func TestRenderFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.png")
	_, err := NewRenderer().RenderFile(path)
	var loadErr *ImageLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Expected ImageLoadError, got %v", err)
	}
	if loadErr.Path != path {
		t.Errorf("Expected path %q in error, got %q", path, loadErr.Path)
	}
}

func TestRenderFileRoundTrip(t *testing.T) {
	img := imageutil.CreateCheckerboardImage(64, 64, 4)
	path := filepath.Join(t.TempDir(), "checker.png")
	if err := imageutil.SavePNG(img, path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	r := NewRenderer(WithLines(8))
	fromFile, err := r.RenderFile(path)
	if err != nil {
		t.Fatalf("RenderFile failed: %v", err)
	}
	fromImage, err := r.Render(img)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if fromFile != fromImage {
		t.Error("RenderFile should match rendering the in-memory image")
	}
}

func TestBrightnessFieldDimensions(t *testing.T) {
	img := imageutil.CreateSolidImage(100, 100, 200)
	r := NewRenderer(WithLines(5))
	field, cols, err := r.BrightnessField(img)
	if err != nil {
		t.Fatalf("BrightnessField failed: %v", err)
	}
	if cols != 10 {
		t.Errorf("Expected 10 columns, got %d", cols)
	}
	if len(field) != 10 {
		t.Fatalf("Expected field height 10, got %d", len(field))
	}
	for y, row := range field {
		if len(row) != 20 {
			t.Errorf("Row %d: expected width 20, got %d", y, len(row))
		}
		for x, v := range row {
			if v < 0 || v > 1 {
				t.Errorf("field[%d][%d] = %v, out of [0,1]", y, x, v)
			}
		}
	}
}
