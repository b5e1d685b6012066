package parser

import (
	"github.com/jsvensson/ledgrad/colorspace"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// Functions returns the color functions available in program files. All of
// them take and return hex color strings and operate in CIELUV so the
// perceived effect is uniform across the palette.
func Functions() map[string]function.Function {
	return map[string]function.Function{
		"lighten":  makeLightenFunc(),
		"saturate": makeSaturateFunc(),
		"mix":      makeMixFunc(),
		"white":    makeWhiteFunc(),
	}
}

// makeLightenFunc creates an HCL function that shifts lightness by a given
// amount of L* units (negative amounts darken).
// Usage: lighten("#hex", 10) or lighten(palette.color, -15)
func makeLightenFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Shifts a color's CIELUV lightness by the given amount of L* units",
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
			{Name: "amount", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := colorspace.ParseHex(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			amount, _ := args[1].AsBigFloat().Float64()

			luv := c.Luv()
			luv.L += amount
			return cty.StringVal(luv.RGB().Hex()), nil
		},
	})
}

// makeSaturateFunc creates an HCL function that scales chroma by a factor.
// Usage: saturate(palette.color, 1.5) boosts, saturate(palette.color, 0)
// produces the achromatic color of the same lightness.
func makeSaturateFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Scales a color's CIELUV chroma by the given factor",
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
			{Name: "factor", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := colorspace.ParseHex(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			factor, _ := args[1].AsBigFloat().Float64()

			luv := c.Luv()
			luv.U *= factor
			luv.V *= factor
			return cty.StringVal(luv.RGB().Hex()), nil
		},
	})
}

// makeWhiteFunc creates an HCL function that returns a color's extractable
// white component as an achromatic color. Useful for previewing what the
// dedicated white channel will carry on an RGBW strip.
// Usage: white(palette.color)
func makeWhiteFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Returns the extractable white component of a color",
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := colorspace.ParseHex(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}

			w := c.RGBW().W
			gray := colorspace.RGB{R: w, G: w, B: w}
			return cty.StringVal(gray.Hex()), nil
		},
	})
}

// makeMixFunc creates an HCL function that blends two colors in CIELUV.
// Usage: mix(palette.a, palette.b, 0.5)
func makeMixFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Interpolates between two colors in CIELUV at parameter t",
		Params: []function.Parameter{
			{Name: "a", Type: cty.String},
			{Name: "b", Type: cty.String},
			{Name: "t", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			a, err := colorspace.ParseHex(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			b, err := colorspace.ParseHex(args[1].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			t, _ := args[2].AsBigFloat().Float64()

			mixed := a.Luv().Lerp(b.Luv(), t)
			return cty.StringVal(mixed.RGB().Hex()), nil
		},
	})
}
