// Package img2block converts raster images into fixed-height grids of
// Unicode block and shade characters. Each output cell is sampled as a
// 2x2 grid of quadrant brightness means and matched against a fixed
// glyph palette by squared Euclidean distance.
package img2block

// QuadrantSample holds the mean intensity of the four quadrants of one
// character cell, indexed [row][col] with row 0 on top. Values are in
// [0, 1].
type QuadrantSample [2][2]float64

// PaletteEntry pairs a glyph with the 2x2 intensity pattern it is
// expected to reproduce on screen.
type PaletteEntry struct {
	Glyph   rune
	Pattern QuadrantSample
}

// palette is the fixed glyph table. The first 16 entries are the binary
// quadrant combinations ordered by their quadrant bits (bit 3:
// top-left, bit 2: top-right, bit 1: bottom-left, bit 0: bottom-right);
// the last three are the uniform shade glyphs. Enumeration order is
// part of the matching contract: BestFit keeps the first entry on a
// distance tie.
var palette = []PaletteEntry{
	{' ', QuadrantSample{{0, 0}, {0, 0}}}, // 0000: Empty space
	{'▗', QuadrantSample{{0, 0}, {0, 1}}}, // 0001: Quadrant lower right
	{'▖', QuadrantSample{{0, 0}, {1, 0}}}, // 0010: Quadrant lower left
	{'▄', QuadrantSample{{0, 0}, {1, 1}}}, // 0011: Lower half block
	{'▝', QuadrantSample{{0, 1}, {0, 0}}}, // 0100: Quadrant upper right
	{'▐', QuadrantSample{{0, 1}, {0, 1}}}, // 0101: Right half block
	{'▞', QuadrantSample{{0, 1}, {1, 0}}}, // 0110: Diagonal upper right and lower left
	{'▟', QuadrantSample{{0, 1}, {1, 1}}}, // 0111: Three quadrants: upper right, lower left, lower right
	{'▘', QuadrantSample{{1, 0}, {0, 0}}}, // 1000: Quadrant upper left
	{'▚', QuadrantSample{{1, 0}, {0, 1}}}, // 1001: Diagonal upper left and lower right
	{'▌', QuadrantSample{{1, 0}, {1, 0}}}, // 1010: Left half block
	{'▙', QuadrantSample{{1, 0}, {1, 1}}}, // 1011: Three quadrants: upper left, lower left, lower right
	{'▀', QuadrantSample{{1, 1}, {0, 0}}}, // 1100: Upper half block
	{'▜', QuadrantSample{{1, 1}, {0, 1}}}, // 1101: Three quadrants: upper left, upper right, lower right
	{'▛', QuadrantSample{{1, 1}, {1, 0}}}, // 1110: Three quadrants: upper left, upper right, lower left
	{'█', QuadrantSample{{1, 1}, {1, 1}}}, // 1111: Full block

	{'░', QuadrantSample{{0.25, 0.25}, {0.25, 0.25}}}, // Light shade
	{'▒', QuadrantSample{{0.5, 0.5}, {0.5, 0.5}}},     // Medium shade
	{'▓', QuadrantSample{{0.75, 0.75}, {0.75, 0.75}}}, // Dark shade
}

// Palette returns a copy of the glyph table in enumeration order.
func Palette() []PaletteEntry {
	entries := make([]PaletteEntry, len(palette))
	copy(entries, palette)
	return entries
}

// Ramp selects the glyph mapping strategy used by a Renderer.
type Ramp int

const (
	// RampQuadrant matches each cell's quadrant sample against the
	// block palette. This is the default and the only ramp that uses
	// sub-cell detail.
	RampQuadrant Ramp = iota

	// RampVertical maps cell brightness onto the lower-block eighths.
	RampVertical

	// RampHorizontal maps cell brightness onto the left-block eighths.
	RampHorizontal

	// RampShade maps cell brightness onto the shade characters.
	RampShade
)

// rampGlyphs holds the linear brightness ramps, darkest first.
var rampGlyphs = map[Ramp][]rune{
	RampVertical:   []rune(" ▁▂▃▄▅▆▇█"),
	RampHorizontal: []rune(" ▏▎▍▌▋▊▉█"),
	RampShade:      []rune(" ░▒▓█"),
}
