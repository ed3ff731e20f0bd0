package pptx

import "math"

// EMUPerInch is the number of English Metric Units in one inch.
const EMUPerInch = 914400

// SlideWidth and SlideHeight are the 16:9 canvas in inches.
const (
	SlideWidth  = 13.333
	SlideHeight = 7.5
)

// Rect is a position and size in inches, measured from the slide's top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// EMU converts inches to English Metric Units.
func EMU(inches float64) int64 {
	return int64(math.Round(inches * EMUPerInch))
}

// centipoints converts points to the hundredths used by DrawingML font sizes and spacing.
func centipoints(points float64) int {
	return int(math.Round(points * 100))
}
