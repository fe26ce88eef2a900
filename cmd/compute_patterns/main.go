// Command compute_patterns rasterizes the block palette glyphs from a
// monospace TrueType font and reports the measured per-quadrant ink
// coverage next to the nominal pattern the matcher assumes. Use it to
// sanity-check how far a given terminal font drifts from the palette's
// idealized intensities.
package main

import (
	"flag"
	"fmt"
	"image"
	"math"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/casparb/img2block"
)

const (
	// Raster cell size in pixels. Height is double the width to match
	// the 2:1 character cell shape the renderer assumes.
	cellWidth  = 16
	cellHeight = 32
)

func main() {
	fontPath := flag.String("font", "",
		"Path to a monospace TTF file (required)")
	threshold := flag.Float64("threshold", 0.25,
		"Alpha coverage above which a pixel counts as ink")
	flag.Parse()

	if *fontPath == "" {
		fmt.Fprintln(os.Stderr, "usage: compute_patterns -font <file.ttf>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	ttf, err := loadFont(*fontPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading font: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-6s %-28s %-28s %s\n",
		"glyph", "nominal (tl tr bl br)", "measured (tl tr bl br)", "max dev")

	var worstGlyph rune
	var worstDev float64
	for _, entry := range img2block.Palette() {
		measured := measureQuadrants(ttf, entry.Glyph, *threshold)

		dev := 0.0
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				d := math.Abs(measured[y][x] - entry.Pattern[y][x])
				if d > dev {
					dev = d
				}
			}
		}
		if dev > worstDev {
			worstDev = dev
			worstGlyph = entry.Glyph
		}

		fmt.Printf("%-6q %-28s %-28s %.3f\n",
			entry.Glyph, formatSample(entry.Pattern), formatSample(measured), dev)
	}

	fmt.Printf("\nworst deviation: %.3f at %q\n", worstDev, worstGlyph)
}

// loadFont loads a TrueType font from file.
func loadFont(path string) (*truetype.Font, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return freetype.ParseFont(fontBytes)
}

// measureQuadrants renders one glyph into a cellWidth x cellHeight
// alpha raster and returns the fraction of ink pixels in each quadrant.
func measureQuadrants(ttf *truetype.Font, r rune, threshold float64) img2block.QuadrantSample {
	img := image.NewAlpha(image.Rect(0, 0, cellWidth, cellHeight))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(cellHeight)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    cellHeight,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	// Baseline so that the em box fills the cell vertically.
	ascent := int(face.Metrics().Ascent >> 6)
	pt := freetype.Pt(0, ascent)
	if _, err := ctx.DrawString(string(r), pt); err != nil {
		return img2block.QuadrantSample{}
	}

	alphaThreshold := uint8(threshold * 255)
	var sample img2block.QuadrantSample
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			ink := 0
			for py := y * cellHeight / 2; py < (y+1)*cellHeight/2; py++ {
				for px := x * cellWidth / 2; px < (x+1)*cellWidth/2; px++ {
					if img.AlphaAt(px, py).A > alphaThreshold {
						ink++
					}
				}
			}
			sample[y][x] = float64(ink) / float64(cellWidth*cellHeight/4)
		}
	}
	return sample
}

// formatSample prints the four quadrant values in reading order.
func formatSample(s img2block.QuadrantSample) string {
	return fmt.Sprintf("%.2f %.2f %.2f %.2f",
		s[0][0], s[0][1], s[1][0], s[1][1])
}
