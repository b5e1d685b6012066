// Package colorspace converts colors between sRGB, RGBW, CIE XYZ, CIELUV
// and its cylindrical form LCh, and interpolates between colors within a
// chosen space.
//
// All types are small float64 value structs and every operation is a pure,
// allocation-free function of its inputs. Conversions pivot through XYZ:
// RGB ↔ linear RGB ↔ XYZ ↔ Luv ↔ LCh. RGBW is a re-encoding of RGB for
// four-channel LEDs such as the SK6812, with the shared white intensity
// split into its own channel.
//
// No conversion fails or clamps. Out-of-gamut channel values produced by
// extrapolated interpolation pass through untouched; call Clamped before
// handing values to hardware.
package colorspace
