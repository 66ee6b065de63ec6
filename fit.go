package flexy

import (
	"math"
	"strconv"
)

// FitMode is the policy reconciling a fixed-aspect design with the viewport.
type FitMode string

const (
	FitNone   FitMode = ""
	FitWidth  FitMode = "width"  // the design fills the width, no scaling
	FitHeight FitMode = "height" // uniform downscale so the design fits the height
)

// Round rounds half away from zero at the given number of fractional digits.
// The epsilon nudge keeps values like 1.005 from rounding down.
func Round(x float64, digits int) float64 {
	m := math.Pow(10, float64(digits))
	if x < 0 {
		return -Round(-x, digits)
	}
	return math.Floor((x+epsilon)*m+0.5) / m
}

const epsilon = 2.220446049250313e-16

// DesignRatio returns the design height as a percentage of its width, rounded
// to 4 decimals. A zero (or negative) width yields NaN.
func DesignRatio(width, height float64) float64 {
	if !(width > 0) {
		return math.NaN()
	}
	return Round(height/width*100, 4)
}

// validRatio reports whether the ratio can drive a scale computation.
func validRatio(ratio float64) bool {
	return !math.IsNaN(ratio) && !math.IsInf(ratio, 0) && ratio > 0
}

// FitScale returns viewportHeight / (viewportWidth * ratio/100): the scale at
// which a design of the given ratio, laid out at viewport width, fits the
// viewport height.
func FitScale(ratio, viewportWidth, viewportHeight float64) float64 {
	currentHeightPx := viewportWidth * (ratio / 100)
	return viewportHeight / currentHeightPx
}

// HeightFit returns the transform scale for fit="height". ok is false when
// no transform applies: the ratio is invalid or the design already fits.
func HeightFit(ratio, viewportWidth, viewportHeight float64) (scale float64, ok bool) {
	if !validRatio(ratio) {
		return 0, false
	}
	scale = FitScale(ratio, viewportWidth, viewportHeight)
	if math.IsNaN(scale) || scale >= 1 {
		return scale, false
	}
	return scale, true
}

// FullsizeGeometry is the sizing that makes a node cover the viewport in
// spite of the container scale-down.
type FullsizeGeometry struct {
	Scale float64
	// Scaled is true when the container is scaled down; Width and MarginLeft
	// apply then. Height applies otherwise.
	Scaled     bool
	Width      float64
	MarginLeft float64
	Height     float64
}

func ComputeFullsize(ratio, viewportWidth, viewportHeight float64) FullsizeGeometry {
	currentWidthPx := viewportHeight / (ratio / 100)
	scale := FitScale(ratio, viewportWidth, viewportHeight)
	if scale < 1 {
		width := viewportWidth * (1 / scale)
		return FullsizeGeometry{
			Scale:      scale,
			Scaled:     true,
			Width:      width,
			MarginLeft: -((width - currentWidthPx*(1/scale)) / 2),
		}
	}
	return FullsizeGeometry{Scale: scale, Height: viewportHeight}
}

// cssNumber formats a number for a style declaration.
func cssNumber(v float64) string {
	return strconv.FormatFloat(Round(v, 6), 'f', -1, 64)
}
