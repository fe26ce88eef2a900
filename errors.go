package img2block

import "fmt"

// ImageLoadError reports a source image that could not be read or
// decoded.
type ImageLoadError struct {
	Path string
	Err  error
}

func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("img2block: load %s: %v", e.Path, e.Err)
}

func (e *ImageLoadError) Unwrap() error { return e.Err }

// InvalidParameterError reports a parameter that would produce a
// degenerate grid: a non-positive line count or a zero-area source
// image.
type InvalidParameterError struct {
	Param string
	Value any
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("img2block: invalid %s: %v", e.Param, e.Value)
}
