package theme

import "github.com/pixelview/minichar/core"

import "github.com/lucasb-eyer/go-colorful"

// Background colors with relative luminance at or above this threshold
// are classified as light.
const LightnessThreshold = 0.5

// Luminance returns the relative luminance of the color in [0, 1],
// zero for pure black and one for pure white. Computed through the
// sRGB -> XYZ conversion (the Y component of XYZ is relative
// luminance); alpha is ignored.
func Luminance(clr core.Color) float64 {
	rgb := colorful.Color{
		R: float64(clr.R)/255.0,
		G: float64(clr.G)/255.0,
		B: float64(clr.B)/255.0,
	}
	_, y, _ := rgb.Xyz()
	return y
}
