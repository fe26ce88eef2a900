package img2block

// SampleCell computes the quadrant means for the character cell at
// (cellX, cellY) in a row-major brightness field. cellW and cellH are
// the cell dimensions in pixels and may be fractional; boundaries are
// computed by truncating interpolation, so adjacent cells can disagree
// by one pixel. That rounding asymmetry is part of the output contract
// and deliberately left uncorrected.
func SampleCell(field [][]float64, cellX, cellY int, cellW, cellH float64) QuadrantSample {
	xStart := int(float64(cellX) * cellW)
	xMid := int((float64(cellX) + 0.5) * cellW)
	xEnd := int(float64(cellX+1) * cellW)

	yStart := int(float64(cellY) * cellH)
	yMid := int((float64(cellY) + 0.5) * cellH)
	yEnd := int(float64(cellY+1) * cellH)

	return QuadrantSample{
		{
			meanRegion(field, xStart, yStart, xMid, yMid),
			meanRegion(field, xMid, yStart, xEnd, yMid),
		},
		{
			meanRegion(field, xStart, yMid, xMid, yEnd),
			meanRegion(field, xMid, yMid, xEnd, yEnd),
		},
	}
}

// meanRegion averages field over [x0,x1) x [y0,y1), clipped to the
// field bounds. An empty region has mean 0, so degenerate quadrants on
// tiny grids resolve to dark rather than NaN.
func meanRegion(field [][]float64, x0, y0, x1, y1 int) float64 {
	var sum float64
	var count int
	for y := max(y0, 0); y < y1 && y < len(field); y++ {
		row := field[y]
		for x := max(x0, 0); x < x1 && x < len(row); x++ {
			sum += row[x]
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
