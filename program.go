// Package ledgrad loads gradient program files and resolves them into
// sampled color ramps for RGBW LED strips. The conversion and
// interpolation math lives in the colorspace package.
package ledgrad

import (
	"fmt"

	"github.com/jsvensson/ledgrad/internal/parser"
)

// Program is a fully-resolved gradient program, ready for rendering.
type Program = parser.Program

// Gradient is one resolved gradient: two sRGB endpoints, an interpolation
// space and a step count.
type Gradient = parser.Gradient

// Meta holds program metadata.
type Meta = parser.Meta

// Load parses an HCL gradient program file and returns the fully-resolved
// Program.
func Load(path string) (*Program, error) {
	prog, err := parser.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}
	return prog, nil
}
