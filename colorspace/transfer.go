package colorspace

import "math"

const gamma = 2.4

// srgbToLinear converts a gamma-companded sRGB component to linear light
// (inverse sRGB companding). Defined for all finite inputs: negative values
// use the odd-symmetric extension so that encode and decode stay exact
// inverses during interpolation overshoot.
func srgbToLinear(c float64) float64 {
	if c < 0 {
		return -srgbToLinear(-c)
	}
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, gamma)
}

// linearToSRGB converts a linear-light component to gamma-companded sRGB.
// Exact inverse of srgbToLinear, including the negative extension.
func linearToSRGB(c float64) float64 {
	if c < 0 {
		return -linearToSRGB(-c)
	}
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1.0/gamma) - 0.055
}
