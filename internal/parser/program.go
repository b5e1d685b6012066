package parser

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/ledgrad/colorspace"
	"github.com/zclconf/go-cty/cty"
)

// Defaults applied to gradient blocks that omit the attribute.
const (
	DefaultSpace = colorspace.SpaceLuv
	DefaultSteps = 32
)

// Program is a fully-resolved gradient program.
type Program struct {
	Meta      Meta
	Palette   map[string]colorspace.RGB
	Gradients []Gradient
}

// Meta holds program metadata.
type Meta struct {
	Name   string `hcl:"name,optional"`
	Author string `hcl:"author,optional"`
}

// Gradient is one resolved gradient block: two sRGB endpoints, the space
// to interpolate in, and the number of samples to emit.
type Gradient struct {
	Name  string
	Space colorspace.Space
	Steps int
	From  colorspace.RGB
	To    colorspace.RGB
}

// paletteBlock wraps the palette block for gohcl decoding.
type paletteBlock struct {
	Entries hcl.Body `hcl:",remain"`
}

// rawConfig captures the palette block first; it is evaluated without the
// palette variable so other blocks can reference it afterwards.
type rawConfig struct {
	Palette *paletteBlock `hcl:"palette,block"`
	Remain  hcl.Body      `hcl:",remain"`
}

// gradientBlock is the wire form of a gradient block. Steps is a pointer so
// an explicit steps = 0 is distinguishable from the attribute being absent.
type gradientBlock struct {
	Name  string `hcl:"name,label"`
	Space string `hcl:"space,optional"`
	Steps *int   `hcl:"steps,optional"`
	From  string `hcl:"from"`
	To    string `hcl:"to"`
}

// resolvedConfig decodes the blocks that may reference palette values.
type resolvedConfig struct {
	Meta      *Meta           `hcl:"meta,block"`
	Gradients []gradientBlock `hcl:"gradient,block"`
	Remain    hcl.Body        `hcl:",remain"`
}

// Parse reads and resolves a gradient program file.
func Parse(path string) (*Program, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading program file: %w", err)
	}
	return ParseBytes(src, path)
}

// ParseBytes resolves a gradient program from source. filename is used in
// diagnostics only.
func ParseBytes(src []byte, filename string) (*Program, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	// First pass: palette entries are literals (functions allowed, no
	// palette references within the palette itself).
	var raw rawConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("decoding palette: %s", diags.Error())
	}

	palette := make(map[string]colorspace.RGB)
	if raw.Palette != nil {
		fnCtx := &hcl.EvalContext{Functions: Functions()}
		entries, err := decodeBodyToMap(raw.Palette.Entries, fnCtx)
		if err != nil {
			return nil, fmt.Errorf("parsing palette: %w", err)
		}
		for name, hex := range entries {
			c, err := colorspace.ParseHex(hex)
			if err != nil {
				return nil, fmt.Errorf("palette.%s: %w", name, err)
			}
			palette[name] = c
		}
	}

	// Second pass: decode blocks that reference the palette.
	ctx := BuildEvalContext(palette)
	var resolved resolvedConfig
	if diags := gohcl.DecodeBody(file.Body, ctx, &resolved); diags.HasErrors() {
		return nil, fmt.Errorf("decoding: %s", diags.Error())
	}

	prog := &Program{Palette: palette}
	if resolved.Meta != nil {
		prog.Meta = *resolved.Meta
	}

	seen := make(map[string]bool)
	for _, block := range resolved.Gradients {
		g, err := resolveGradient(block)
		if err != nil {
			return nil, err
		}
		if seen[g.Name] {
			return nil, fmt.Errorf("duplicate gradient %q", g.Name)
		}
		seen[g.Name] = true
		prog.Gradients = append(prog.Gradients, g)
	}

	if len(prog.Gradients) == 0 {
		return nil, fmt.Errorf("no gradient blocks found")
	}

	return prog, nil
}

// resolveGradient validates one gradient block and parses its endpoints.
func resolveGradient(block gradientBlock) (Gradient, error) {
	g := Gradient{
		Name:  block.Name,
		Space: DefaultSpace,
		Steps: DefaultSteps,
	}

	if block.Space != "" {
		space, err := colorspace.ParseSpace(block.Space)
		if err != nil {
			return Gradient{}, fmt.Errorf("gradient %q: %w", block.Name, err)
		}
		g.Space = space
	}

	if block.Steps != nil {
		if *block.Steps < 2 {
			return Gradient{}, fmt.Errorf("gradient %q: steps must be at least 2, got %d", block.Name, *block.Steps)
		}
		g.Steps = *block.Steps
	}

	from, err := colorspace.ParseHex(block.From)
	if err != nil {
		return Gradient{}, fmt.Errorf("gradient %q: from: %w", block.Name, err)
	}
	to, err := colorspace.ParseHex(block.To)
	if err != nil {
		return Gradient{}, fmt.Errorf("gradient %q: to: %w", block.Name, err)
	}
	g.From = from
	g.To = to

	return g, nil
}

// decodeBodyToMap decodes an hcl.Body with arbitrary string attributes into
// a map.
func decodeBodyToMap(body hcl.Body, ctx *hcl.EvalContext) (map[string]string, error) {
	if body == nil {
		return make(map[string]string), nil
	}

	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("getting attributes: %s", diags.Error())
	}

	result := make(map[string]string, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluating %s: %s", name, diags.Error())
		}
		if val.Type() != cty.String {
			return nil, fmt.Errorf("%s: expected a color string", name)
		}
		result[name] = val.AsString()
	}
	return result, nil
}

// BuildEvalContext builds the evaluation context exposing palette colors as
// palette.<name> along with the color functions.
func BuildEvalContext(palette map[string]colorspace.RGB) *hcl.EvalContext {
	vals := make(map[string]cty.Value, len(palette))

	// Sort keys for deterministic output
	keys := make([]string, 0, len(palette))
	for k := range palette {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		vals[k] = cty.StringVal(palette[k].Hex())
	}

	ctx := &hcl.EvalContext{
		Functions: Functions(),
	}
	if len(vals) > 0 {
		ctx.Variables = map[string]cty.Value{
			"palette": cty.ObjectVal(vals),
		}
	}
	return ctx
}
