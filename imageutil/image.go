// Package imageutil provides the image loading, resizing, and channel
// extraction that feeds the block renderer.
package imageutil

import (
	"image"
)

// GrayAlphaImage wraps image.NRGBA to expose grayscale and alpha
// channels with straight (non-premultiplied) alpha. Straight alpha
// matters here: the renderer shifts the gray channel before alpha
// compositing, which premultiplied storage would corrupt.
type GrayAlphaImage struct {
	*image.NRGBA
}

// NewGrayAlphaImage creates a GrayAlphaImage with the specified
// dimensions.
func NewGrayAlphaImage(width, height int) *GrayAlphaImage {
	return &GrayAlphaImage{
		NRGBA: image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// GrayAlphaFromImage converts any image.Image to a GrayAlphaImage.
func GrayAlphaFromImage(img image.Image) *GrayAlphaImage {
	if nrgba, ok := img.(*image.NRGBA); ok {
		return &GrayAlphaImage{NRGBA: nrgba}
	}

	bounds := img.Bounds()
	dst := NewGrayAlphaImage(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.Set(x-bounds.Min.X, y-bounds.Min.Y, img.At(x, y))
		}
	}
	return dst
}

// Width returns the image width.
func (img *GrayAlphaImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *GrayAlphaImage) Height() int {
	return img.Bounds().Dy()
}

// Clone creates a deep copy of the image.
func (img *GrayAlphaImage) Clone() *GrayAlphaImage {
	clone := NewGrayAlphaImage(img.Width(), img.Height())
	copy(clone.Pix, img.Pix)
	return clone
}
