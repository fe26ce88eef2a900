package img2block

// Clamp01 clamps v to the unit interval.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// AdjustContrast remaps v linearly around mid-gray and clamps the
// result. Strength 1.0 is the identity, strength > 1.0 pushes values
// toward 0 or 1 (sharpening the eventual glyph match, since the binary
// patterns sit at the extremes), strength < 1.0 flattens, and strength
// 0.0 collapses everything to 0.5.
func AdjustContrast(v, strength float64) float64 {
	return Clamp01((v-0.5)*strength + 0.5)
}

// ApplyBrightnessShift adds delta to v and clamps the result. Negative
// delta darkens, positive brightens.
func ApplyBrightnessShift(v, delta float64) float64 {
	return Clamp01(v + delta)
}

// adjustContrastField applies AdjustContrast elementwise, in place.
func adjustContrastField(field [][]float64, strength float64) {
	for y := range field {
		for x, v := range field[y] {
			field[y][x] = AdjustContrast(v, strength)
		}
	}
}

// shiftField applies ApplyBrightnessShift elementwise, in place.
func shiftField(field [][]float64, delta float64) {
	for y := range field {
		for x, v := range field[y] {
			field[y][x] = ApplyBrightnessShift(v, delta)
		}
	}
}
