package imageutil

import "image/color"

// CreateSolidImage creates a fully opaque image of a single gray level.
func CreateSolidImage(width, height int, gray uint8) *GrayAlphaImage {
	return CreateSolidAlphaImage(width, height, gray, 255)
}

// CreateSolidAlphaImage creates an image of a single gray level with a
// uniform alpha.
func CreateSolidAlphaImage(width, height int, gray, alpha uint8) *GrayAlphaImage {
	img := NewGrayAlphaImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: gray, G: gray, B: gray, A: alpha})
		}
	}
	return img
}

// CreateGradientImage creates a horizontal dark-to-light gradient.
func CreateGradientImage(width, height int) *GrayAlphaImage {
	img := NewGrayAlphaImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(255 * x / (width - 1))
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

// CreateCheckerboardImage creates a black and white checkerboard for
// quadrant matching tests.
func CreateCheckerboardImage(width, height, squareSize int) *GrayAlphaImage {
	img := NewGrayAlphaImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			isWhite := ((x/squareSize)+(y/squareSize))%2 == 0
			if isWhite {
				img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{R: 0, G: 0, B: 0, A: 255})
			}
		}
	}
	return img
}

// CreateTransparentImage creates a fully transparent image with a white
// color channel underneath.
func CreateTransparentImage(width, height int) *GrayAlphaImage {
	return CreateSolidAlphaImage(width, height, 255, 0)
}
