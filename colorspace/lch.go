package colorspace

import (
	"fmt"
	"math"
)

// LCh is the cylindrical form of CIELUV: lightness, chroma (radial
// distance from the achromatic axis) and hue (angle in degrees, [0, 360)).
type LCh struct {
	L, C, H float64
}

// Luv converts back to Cartesian CIELUV coordinates.
func (c LCh) Luv() Luv {
	hRad := c.H * (math.Pi / 180.0)
	return Luv{
		L: c.L,
		U: c.C * math.Cos(hRad),
		V: c.C * math.Sin(hRad),
	}
}

// XYZ converts to CIE XYZ, pivoting through CIELUV.
func (c LCh) XYZ() XYZ {
	return c.Luv().XYZ()
}

// RGB converts to sRGB, pivoting through CIELUV and XYZ.
func (c LCh) RGB() RGB {
	return c.Luv().XYZ().RGB()
}

// RGBW converts to sRGB and extracts the white channel.
func (c LCh) RGBW() RGBW {
	return c.RGB().RGBW()
}

// Lerp interpolates lightness and chroma linearly and hue along the
// shorter angular arc, so a ramp from 350° to 10° passes through 0°
// instead of sweeping 340° the long way round. t is not clamped.
func (c LCh) Lerp(o LCh, t float64) LCh {
	dh := math.Mod(o.H-c.H+540.0, 360.0) - 180.0
	h := math.Mod(c.H+dh*t, 360.0)
	if h < 0 {
		h += 360.0
	}

	return LCh{
		L: lerp(c.L, o.L, t),
		C: lerp(c.C, o.C, t),
		H: h,
	}
}

func (c LCh) String() string {
	return fmt.Sprintf("CIELCh L*=%.2f, C=%.2f, h=%.2f", c.L, c.C, c.H)
}
