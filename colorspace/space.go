package colorspace

import "fmt"

// Space identifies one of the color representations interpolation can
// operate in.
type Space string

const (
	SpaceRGB  Space = "rgb"
	SpaceRGBW Space = "rgbw"
	SpaceXYZ  Space = "xyz"
	SpaceLuv  Space = "luv"
	SpaceLCh  Space = "lch"
)

// ParseSpace maps a space name to its Space value.
func ParseSpace(s string) (Space, error) {
	switch Space(s) {
	case SpaceRGB, SpaceRGBW, SpaceXYZ, SpaceLuv, SpaceLCh:
		return Space(s), nil
	}
	return "", fmt.Errorf("unknown color space %q (want rgb, rgbw, xyz, luv or lch)", s)
}

// Blend interpolates between two sRGB endpoints at parameter t inside the
// space and returns the result with the white channel extracted. Both
// endpoints are converted into the space first, so a ramp sampled at
// increasing t moves along a straight line (or the shorter hue arc, for
// LCh) within that space.
func (s Space) Blend(a, b RGB, t float64) RGBW {
	switch s {
	case SpaceRGBW:
		return a.RGBW().Lerp(b.RGBW(), t)
	case SpaceXYZ:
		return a.XYZ().Lerp(b.XYZ(), t).RGB().RGBW()
	case SpaceLuv:
		return a.Luv().Lerp(b.Luv(), t).RGBW()
	case SpaceLCh:
		return a.LCh().Lerp(b.LCh(), t).RGBW()
	default:
		return a.Lerp(b, t).RGBW()
	}
}
