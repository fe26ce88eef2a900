package imageutil

import (
	"image"

	"github.com/disintegration/gift"
)

// Interpolation specifies the resampling filter for resizing.
type Interpolation int

const (
	// InterpolationLanczos is the quality anti-aliasing filter used
	// for the supersampled render resize.
	InterpolationLanczos Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

// Resize resizes an image to the specified dimensions using the given
// resampling filter. Width and height must both be positive.
func Resize(img *GrayAlphaImage, width, height int, interp Interpolation) *GrayAlphaImage {
	var resampling gift.Resampling
	switch interp {
	case InterpolationLinear:
		resampling = gift.LinearResampling
	case InterpolationNearest:
		resampling = gift.NearestNeighborResampling
	default:
		resampling = gift.LanczosResampling
	}

	g := gift.New(gift.Resize(width, height, resampling))
	dst := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img.NRGBA)
	return &GrayAlphaImage{NRGBA: dst}
}
