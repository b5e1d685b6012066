package colorspace

import (
	"fmt"
	"math"
)

// Luv is a color in the CIE 1976 L*, u*, v* color space, relative to the
// D65 reference white.
//
//   - L is lightness in [0, 100],
//   - U is the green/red axis, roughly [-100, 100] for in-gamut colors,
//   - V is the blue/yellow axis, roughly [-100, 100] for in-gamut colors.
type Luv struct {
	L, U, V float64
}

// XYZ converts back to CIE XYZ. L ≤ 0 maps to true black, mirroring the
// forward conversion's treatment of the black singularity.
func (c Luv) XYZ() XYZ {
	if c.L <= 0 {
		return XYZ{}
	}

	uPrime := c.U/(13.0*c.L) + refUPrime
	vPrime := c.V/(13.0*c.L) + refVPrime

	var y float64
	if c.L > 8.0 {
		f := (c.L + 16.0) / 116.0
		y = refY * f * f * f
	} else {
		y = refY * c.L / cieKappa
	}

	return XYZ{
		X: y * 9.0 * uPrime / (4.0 * vPrime),
		Y: y,
		Z: y * (12.0 - 3.0*uPrime - 20.0*vPrime) / (4.0 * vPrime),
	}
}

// RGB converts to sRGB, pivoting through XYZ.
func (c Luv) RGB() RGB {
	return c.XYZ().RGB()
}

// RGBW converts to sRGB and extracts the white channel.
func (c Luv) RGBW() RGBW {
	return c.XYZ().RGB().RGBW()
}

// LCh restates the color in cylindrical coordinates. Pure geometry, exact
// and lossless; an achromatic color gets hue 0 by convention.
func (c Luv) LCh() LCh {
	chroma := c.Chroma()
	if chroma == 0 {
		return LCh{L: c.L}
	}

	h := math.Atan2(c.V, c.U) * (180.0 / math.Pi)
	if h < 0 {
		h += 360.0
	}

	return LCh{L: c.L, C: chroma, H: h}
}

// Chroma is the distance from the achromatic axis.
func (c Luv) Chroma() float64 {
	return math.Hypot(c.U, c.V)
}

// Saturation is chroma relative to lightness, 0 for black.
func (c Luv) Saturation() float64 {
	if c.L <= 0 {
		return 0
	}
	return c.Chroma() / c.L
}

// Lerp linearly interpolates each component toward o. t is not clamped.
func (c Luv) Lerp(o Luv, t float64) Luv {
	return Luv{
		L: lerp(c.L, o.L, t),
		U: lerp(c.U, o.U, t),
		V: lerp(c.V, o.V, t),
	}
}

func (c Luv) String() string {
	return fmt.Sprintf("CIELUV L*=%.2f, u*=%.2f, v*=%.2f", c.L, c.U, c.V)
}
