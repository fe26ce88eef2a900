package imageutil

import (
	"image"
	"image/color"
)

// FloatChannels returns the luminance and alpha channels as row-major
// float fields normalized to [0, 1]. Luminance uses the BT.601 formula
// Y = 0.299*R + 0.587*G + 0.114*B on the straight (non-premultiplied)
// color values.
func (img *GrayAlphaImage) FloatChannels() (gray, alpha [][]float64) {
	width, height := img.Width(), img.Height()
	gray = make([][]float64, height)
	alpha = make([][]float64, height)

	for y := 0; y < height; y++ {
		gray[y] = make([]float64, width)
		alpha[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			c := img.NRGBAAt(x, y)
			lum := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
			gray[y][x] = lum / 255.0
			alpha[y][x] = float64(c.A) / 255.0
		}
	}

	return gray, alpha
}

// FieldToGray converts a [0,1] float field back into a grayscale image,
// clamping out-of-range values. Ragged or empty fields produce an image
// sized by the first row.
func FieldToGray(field [][]float64) *image.Gray {
	height := len(field)
	width := 0
	if height > 0 {
		width = len(field[0])
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width && x < len(field[y]); x++ {
			v := field[y][x]
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			img.SetGray(x, y, color.Gray{Y: uint8(v*255 + 0.5)})
		}
	}
	return img
}
