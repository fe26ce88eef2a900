package img2block

import "math"

// BestFit returns the glyph of the palette entry closest to the sample
// under squared Euclidean distance over the four quadrant positions.
// Ties keep the earliest entry in palette order, so the result is
// deterministic for any input.
func BestFit(sample QuadrantSample) rune {
	glyph, _ := bestFitEntry(sample)
	return glyph
}

// bestFitEntry returns the winning glyph together with its distance.
func bestFitEntry(sample QuadrantSample) (rune, float64) {
	best := palette[0].Glyph
	minDist := math.MaxFloat64

	for _, entry := range palette {
		var dist float64
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				d := sample[y][x] - entry.Pattern[y][x]
				dist += d * d
			}
		}
		if dist < minDist {
			minDist = dist
			best = entry.Glyph
		}
	}

	return best, minDist
}
