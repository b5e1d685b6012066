package colorspace

import "fmt"

// RGBW is a color for four-channel LEDs: residual red, green and blue plus
// a shared white channel. Produced by RGB.RGBW, which guarantees no channel
// is negative for in-range input.
type RGBW struct {
	R, G, B, W float64
}

// RGB recombines the white channel back into the color channels. This is
// the exact inverse of RGB.RGBW.
func (c RGBW) RGB() RGB {
	return RGB{
		R: c.R + c.W,
		G: c.G + c.W,
		B: c.B + c.W,
	}
}

// XYZ recombines the white channel and converts to CIE XYZ.
func (c RGBW) XYZ() XYZ {
	return c.RGB().XYZ()
}

// Luv recombines the white channel and converts to CIELUV.
func (c RGBW) Luv() Luv {
	return c.RGB().Luv()
}

// LCh recombines the white channel and converts to cylindrical CIELUV.
func (c RGBW) LCh() LCh {
	return c.RGB().LCh()
}

// Clamped returns the color with every channel clamped to [0, 1].
func (c RGBW) Clamped() RGBW {
	return RGBW{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.W)}
}

// Lerp linearly interpolates each channel toward o. t is not clamped.
func (c RGBW) Lerp(o RGBW, t float64) RGBW {
	return RGBW{
		R: lerp(c.R, o.R, t),
		G: lerp(c.G, o.G, t),
		B: lerp(c.B, o.B, t),
		W: lerp(c.W, o.W, t),
	}
}

func (c RGBW) String() string {
	return fmt.Sprintf("RGBW R=%.2f, G=%.2f, B=%.2f, W=%.2f", c.R, c.G, c.B, c.W)
}
