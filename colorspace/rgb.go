package colorspace

import (
	"fmt"
	"math"
	"strings"
)

// RGB is a color in the sRGB color space. Channels are nominally in
// [0.0, 1.0]; values outside that range are carried through unchanged so
// interpolation overshoot never fails.
type RGB struct {
	R, G, B float64
}

// Named colors used throughout tests and examples.
var (
	Black = RGB{0, 0, 0}
	Red   = RGB{R: 1}
	Green = RGB{G: 1}
	Blue  = RGB{B: 1}
	White = RGB{1, 1, 1}
)

// ParseHex parses a hex color string like "#eb6f92" into an RGB with
// channels scaled to [0, 1].
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q: must be 6 hex digits", s)
	}
	var r, g, b uint8
	_, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}, nil
}

// Hex returns the color as a hex string with leading #, e.g. "#eb6f92".
// Channels are clamped and quantized to 8 bits.
func (c RGB) Hex() string {
	q := c.Clamped()
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(math.Round(q.R*255)),
		uint8(math.Round(q.G*255)),
		uint8(math.Round(q.B*255)))
}

// Clamped returns the color with every channel clamped to [0, 1].
func (c RGB) Clamped() RGB {
	return RGB{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// XYZ converts the color to CIE XYZ: each channel is decoded to linear
// light, then transformed with the sRGB/D65 working-space matrix.
func (c RGB) XYZ() XYZ {
	r := srgbToLinear(c.R)
	g := srgbToLinear(c.G)
	b := srgbToLinear(c.B)

	return XYZ{
		X: 0.4124564*r + 0.3575761*g + 0.1804375*b,
		Y: 0.2126729*r + 0.7151522*g + 0.0721750*b,
		Z: 0.0193339*r + 0.1191920*g + 0.9503041*b,
	}
}

// Luv converts the color to CIELUV, pivoting through XYZ.
func (c RGB) Luv() Luv {
	return c.XYZ().Luv()
}

// LCh converts the color to LCh, pivoting through XYZ and CIELUV.
func (c RGB) LCh() LCh {
	return c.XYZ().Luv().LCh()
}

// RGBW extracts the largest common channel intensity into a dedicated white
// channel: w = min(r, g, b), with w subtracted from each color channel.
// The extraction is exactly reversed by RGBW.RGB.
func (c RGB) RGBW() RGBW {
	w := min(c.R, c.G, c.B)
	return RGBW{
		R: c.R - w,
		G: c.G - w,
		B: c.B - w,
		W: w,
	}
}

// Lerp linearly interpolates each channel toward o. t is not clamped;
// t=0 returns c and t=1 returns o.
func (c RGB) Lerp(o RGB, t float64) RGB {
	return RGB{
		R: lerp(c.R, o.R, t),
		G: lerp(c.G, o.G, t),
		B: lerp(c.B, o.B, t),
	}
}

func (c RGB) String() string {
	return fmt.Sprintf("RGB R=%.2f, G=%.2f, B=%.2f", c.R, c.G, c.B)
}

// lerp interpolates between two scalars. t outside [0, 1] extrapolates.
func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
