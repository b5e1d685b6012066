// Package render samples gradient ramps and writes them out through
// text/template output formats, one file per gradient.
package render

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/jsvensson/ledgrad/colorspace"
	"github.com/jsvensson/ledgrad/internal/parser"
)

// Renderer writes sampled gradients from a resolved program.
type Renderer struct {
	OutputDir string
	Format    string   // one of Formats
	Names     []string // if non-empty, only render these gradients
}

// Step is one sample along a gradient ramp.
type Step struct {
	Index int
	T     float64
	RGB   colorspace.RGB
	RGBW  colorspace.RGBW
}

// rampData is the data passed to output templates.
type rampData struct {
	Program string
	Name    string
	Space   string
	Steps   []Step
}

// Sample evaluates a gradient at its configured step count. Endpoints are
// blended inside the gradient's space; the first and last steps are the
// endpoints themselves.
func Sample(g parser.Gradient) []Step {
	steps := make([]Step, g.Steps)
	for i := range steps {
		t := float64(i) / float64(g.Steps-1)
		w := g.Space.Blend(g.From, g.To, t)
		steps[i] = Step{
			Index: i,
			T:     t,
			RGB:   w.RGB(),
			RGBW:  w,
		}
	}
	return steps
}

// Run samples every selected gradient and writes one output file per
// gradient into the output directory.
func (r *Renderer) Run(prog *parser.Program) error {
	format, ok := formats[r.Format]
	if !ok {
		return fmt.Errorf("unknown output format %q (valid: %s)", r.Format, strings.Join(Formats(), ", "))
	}

	if err := os.MkdirAll(r.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, g := range prog.Gradients {
		if !r.shouldRender(g.Name) {
			continue
		}

		data := rampData{
			Program: prog.Meta.Name,
			Name:    g.Name,
			Space:   string(g.Space),
			Steps:   Sample(g),
		}

		outPath := filepath.Join(r.OutputDir, g.Name+format.ext)
		if err := renderFile(format, outPath, data); err != nil {
			return err
		}
	}

	return nil
}

func (r *Renderer) shouldRender(name string) bool {
	// If no names are specified, render all.
	if len(r.Names) == 0 {
		return true
	}

	return slices.Contains(r.Names, name)
}

func renderFile(format outputFormat, outPath string, data rampData) error {
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", outPath, err)
	}
	defer out.Close()

	if err := format.tmpl.Execute(out, data); err != nil {
		return fmt.Errorf("rendering %s: %w", outPath, err)
	}

	return nil
}

// funcMap holds the helpers available to output templates.
var funcMap = template.FuncMap{
	// byte clamps a channel to [0, 1] and quantizes it to 8 bits. This is
	// the one place floating channel values meet hardware expectations.
	"byte": func(v float64) int {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return int(math.Round(v * 255))
	},
	"hex": func(c colorspace.RGB) string {
		return c.Hex()
	},
	// cname turns a gradient name into a C identifier.
	"cname": func(name string) string {
		var b strings.Builder
		for i, r := range name {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
				b.WriteRune(r)
			case r >= '0' && r <= '9':
				if i == 0 {
					b.WriteRune('_')
				}
				b.WriteRune(r)
			default:
				b.WriteRune('_')
			}
		}
		return b.String()
	},
}
