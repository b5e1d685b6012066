package colorspace

import (
	"fmt"
	"math"
)

// XYZ is a color in the CIE 1931 XYZ color space. Y is luminance, scaled
// so the D65 reference white has Y = 1.0.
type XYZ struct {
	X, Y, Z float64
}

// D65 reference white, sRGB working space.
const (
	refX = 0.95047
	refY = 1.0
	refZ = 1.08883
)

// CIE continuity constants, kept as exact rationals.
// http://www.brucelindbloom.com/LContinuity.html
const (
	cieKappa   = 24389.0 / 27.0
	cieEpsilon = 216.0 / 24389.0
)

// Chromaticity of the reference white in the CIE 1976 UCS diagram.
const (
	refUPrime = 4.0 * refX / (refX + 15.0*refY + 3.0*refZ)
	refVPrime = 9.0 * refY / (refX + 15.0*refY + 3.0*refZ)
)

// RGB converts to sRGB with the inverse working-space matrix followed by
// gamma companding. Out-of-gamut results are not clamped.
// Matrix per sYCC, Amendment 1 to IEC 61966-2-1:1999 (seven decimals).
func (c XYZ) RGB() RGB {
	r := 3.2406255*c.X - 1.5372080*c.Y - 0.4986286*c.Z
	g := -0.9689307*c.X + 1.8758561*c.Y + 0.0415175*c.Z
	b := 0.0557101*c.X - 0.2040211*c.Y + 1.0570959*c.Z

	return RGB{
		R: linearToSRGB(r),
		G: linearToSRGB(g),
		B: linearToSRGB(b),
	}
}

// Luv converts to CIELUV relative to the D65 reference white.
// True black maps to Luv{0, 0, 0} rather than dividing by zero.
func (c XYZ) Luv() Luv {
	d := c.X + 15.0*c.Y + 3.0*c.Z
	if d == 0 {
		return Luv{}
	}

	uPrime := 4.0 * c.X / d
	vPrime := 9.0 * c.Y / d

	yr := c.Y / refY
	var l float64
	if yr > cieEpsilon {
		l = 116.0*math.Cbrt(yr) - 16.0
	} else {
		l = cieKappa * yr
	}

	return Luv{
		L: l,
		U: 13.0 * l * (uPrime - refUPrime),
		V: 13.0 * l * (vPrime - refVPrime),
	}
}

// LCh converts to cylindrical CIELUV.
func (c XYZ) LCh() LCh {
	return c.Luv().LCh()
}

// RGBW converts to sRGB and extracts the white channel.
func (c XYZ) RGBW() RGBW {
	return c.RGB().RGBW()
}

// Lerp linearly interpolates each component toward o. t is not clamped.
func (c XYZ) Lerp(o XYZ, t float64) XYZ {
	return XYZ{
		X: lerp(c.X, o.X, t),
		Y: lerp(c.Y, o.Y, t),
		Z: lerp(c.Z, o.Z, t),
	}
}

func (c XYZ) String() string {
	return fmt.Sprintf("CIEXYZ X=%.2f, Y=%.2f, Z=%.2f", c.X, c.Y, c.Z)
}
