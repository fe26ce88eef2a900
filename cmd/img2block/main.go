package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/casparb/img2block"
	"github.com/casparb/img2block/imageutil"
)

func main() {
	lines := flag.Int("lines", 40,
		"Output height in lines")
	contrast := flag.Float64("contrast", 1.0,
		"Contrast boost strength (1.0 = no change)")
	brightness := flag.Float64("brightness", 0.0,
		"Additive brightness shift applied before alpha compositing "+
			"(negative to darken, positive to lighten)")
	workers := flag.Int("workers", 1,
		"Number of goroutines used to sample rows")
	ramp := flag.String("ramp", "quadrant",
		"Glyph ramp: quadrant, vertical, horizontal, or shade")
	output := flag.String("output", "",
		"Path to save the output (if not specified, prints to stdout)")
	debug := flag.String("debug", "",
		"Path to write the composited brightness field as a PNG")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: img2block [flags] <image>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	var rampVal img2block.Ramp
	switch strings.ToLower(*ramp) {
	case "quadrant":
		rampVal = img2block.RampQuadrant
	case "vertical":
		rampVal = img2block.RampVertical
	case "horizontal":
		rampVal = img2block.RampHorizontal
	case "shade":
		rampVal = img2block.RampShade
	default:
		fmt.Fprintf(os.Stderr,
			"invalid ramp %q, options are quadrant, vertical, horizontal, or shade\n",
			*ramp)
		os.Exit(2)
	}

	r := img2block.NewRenderer(
		img2block.WithLines(*lines),
		img2block.WithContrast(*contrast),
		img2block.WithBrightness(*brightness),
		img2block.WithWorkers(*workers),
		img2block.WithRamp(rampVal),
	)

	img, err := imageutil.LoadImage(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, &img2block.ImageLoadError{Path: path, Err: err})
		os.Exit(1)
	}

	if *debug != "" {
		if err := writeDebugField(r, img, *debug); err != nil {
			fmt.Fprintf(os.Stderr, "error writing debug field: %v\n", err)
			os.Exit(1)
		}
	}

	art, err := r.Render(img)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(art+"\n"), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "error writing to file: %v\n", err)
			os.Exit(1)
		}
		return
	}
	fmt.Println(art)
}

// writeDebugField dumps the composited, tone-adjusted brightness field
// as a grayscale PNG for inspection.
func writeDebugField(r *img2block.Renderer, img *imageutil.GrayAlphaImage, debugPath string) error {
	field, _, err := r.BrightnessField(img)
	if err != nil {
		return err
	}
	return imageutil.SavePNG(imageutil.FieldToGray(field), debugPath)
}
