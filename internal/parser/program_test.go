package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsvensson/ledgrad/colorspace"
)

const validProgram = `
meta {
  name   = "sunset"
  author = "tester"
}

palette {
  ember = "#ff4500"
  sky   = "#1e90ff"
}

gradient "horizon" {
  space = "lch"
  steps = 64
  from  = palette.ember
  to    = palette.sky
}

gradient "fade" {
  from = palette.ember
  to   = "#000000"
}
`

func TestParseBytes(t *testing.T) {
	prog, err := ParseBytes([]byte(validProgram), "test.ledgrad")
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}

	if prog.Meta.Name != "sunset" {
		t.Errorf("Meta.Name = %q, want %q", prog.Meta.Name, "sunset")
	}
	if prog.Meta.Author != "tester" {
		t.Errorf("Meta.Author = %q, want %q", prog.Meta.Author, "tester")
	}

	if len(prog.Palette) != 2 {
		t.Fatalf("len(Palette) = %d, want 2", len(prog.Palette))
	}
	if got := prog.Palette["ember"].Hex(); got != "#ff4500" {
		t.Errorf("palette.ember = %q, want #ff4500", got)
	}

	if len(prog.Gradients) != 2 {
		t.Fatalf("len(Gradients) = %d, want 2", len(prog.Gradients))
	}

	horizon := prog.Gradients[0]
	if horizon.Name != "horizon" {
		t.Errorf("Name = %q, want %q", horizon.Name, "horizon")
	}
	if horizon.Space != colorspace.SpaceLCh {
		t.Errorf("Space = %q, want lch", horizon.Space)
	}
	if horizon.Steps != 64 {
		t.Errorf("Steps = %d, want 64", horizon.Steps)
	}
	if got := horizon.From.Hex(); got != "#ff4500" {
		t.Errorf("From = %q, want #ff4500", got)
	}
	if got := horizon.To.Hex(); got != "#1e90ff" {
		t.Errorf("To = %q, want #1e90ff", got)
	}

	fade := prog.Gradients[1]
	if fade.Space != DefaultSpace {
		t.Errorf("default Space = %q, want %q", fade.Space, DefaultSpace)
	}
	if fade.Steps != DefaultSteps {
		t.Errorf("default Steps = %d, want %d", fade.Steps, DefaultSteps)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sunset.ledgrad")
	if err := os.WriteFile(path, []byte(validProgram), 0o644); err != nil {
		t.Fatal(err)
	}

	prog, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(prog.Gradients) != 2 {
		t.Errorf("len(Gradients) = %d, want 2", len(prog.Gradients))
	}

	if _, err := Parse(filepath.Join(dir, "missing.ledgrad")); err == nil {
		t.Error("Parse of missing file succeeded, want error")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name:    "syntax error",
			src:     `gradient "x" {`,
			wantErr: "parsing HCL",
		},
		{
			name: "no gradients",
			src: `palette {
  a = "#ff0000"
}`,
			wantErr: "no gradient blocks",
		},
		{
			name: "bad hex in palette",
			src: `palette {
  a = "#xyz"
}
gradient "g" {
  from = "#000000"
  to   = "#ffffff"
}`,
			wantErr: "palette.a",
		},
		{
			name: "unknown space",
			src: `gradient "g" {
  space = "hsl"
  from  = "#000000"
  to    = "#ffffff"
}`,
			wantErr: "unknown color space",
		},
		{
			name: "steps too small",
			src: `gradient "g" {
  steps = 1
  from  = "#000000"
  to    = "#ffffff"
}`,
			wantErr: "steps must be at least 2",
		},
		{
			name: "explicit zero steps",
			src: `gradient "g" {
  steps = 0
  from  = "#000000"
  to    = "#ffffff"
}`,
			wantErr: "steps must be at least 2",
		},
		{
			name: "missing endpoint",
			src: `gradient "g" {
  from = "#000000"
}`,
			wantErr: "decoding",
		},
		{
			name: "unknown palette reference",
			src: `palette {
  a = "#ff0000"
}
gradient "g" {
  from = palette.b
  to   = "#ffffff"
}`,
			wantErr: "decoding",
		},
		{
			name: "duplicate gradient name",
			src: `gradient "g" {
  from = "#000000"
  to   = "#ffffff"
}
gradient "g" {
  from = "#ffffff"
  to   = "#000000"
}`,
			wantErr: "duplicate gradient",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBytes([]byte(tt.src), "test.ledgrad")
			if err == nil {
				t.Fatal("ParseBytes succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestParsePaletteFunctions(t *testing.T) {
	src := `
palette {
  base   = "#808080"
  darker = lighten("#808080", -20)
}

gradient "g" {
  from = palette.darker
  to   = lighten(palette.base, 20)
}
`
	prog, err := ParseBytes([]byte(src), "test.ledgrad")
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}

	base := prog.Palette["base"].Luv()
	darker := prog.Palette["darker"].Luv()
	if darker.L >= base.L {
		t.Errorf("darker L* = %v, want below base L* = %v", darker.L, base.L)
	}

	from := prog.Gradients[0].From.Luv()
	to := prog.Gradients[0].To.Luv()
	if to.L <= base.L {
		t.Errorf("to L* = %v, want above base L* = %v", to.L, base.L)
	}
	if from != darker {
		t.Errorf("from = %v, want palette.darker = %v", from, darker)
	}
}
