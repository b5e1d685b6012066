package lsp

import (
	"strings"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func labels(items []protocol.CompletionItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Label)
	}
	return out
}

func hasLabel(items []protocol.CompletionItem, label string) bool {
	for _, item := range items {
		if item.Label == label {
			return true
		}
	}
	return false
}

func TestCompletePaletteReferences(t *testing.T) {
	result := Analyze("test.ledgrad", validSource)

	content := validSource
	// Cursor right after "palette." on the from line.
	items := complete(result, content, protocol.Position{Line: 12, Character: 18})
	if len(items) != 2 {
		t.Fatalf("items = %v, want ember and sky", labels(items))
	}
	if items[0].Label != "ember" || items[1].Label != "sky" {
		t.Errorf("items = %v, want [ember sky] in order", labels(items))
	}
	if items[0].Detail == nil || *items[0].Detail != "#ff4500" {
		t.Errorf("ember detail = %v, want hex preview", items[0].Detail)
	}
}

func TestCompleteValuePosition(t *testing.T) {
	result := Analyze("test.ledgrad", validSource)

	content := "gradient \"g\" {\n  from = \n}"
	items := complete(result, content, protocol.Position{Line: 1, Character: 9})

	for _, want := range []string{"lighten", "saturate", "mix", "white", "palette"} {
		if !hasLabel(items, want) {
			t.Errorf("value completions %v missing %q", labels(items), want)
		}
	}
}

func TestCompleteSpaceValues(t *testing.T) {
	result := Analyze("test.ledgrad", validSource)

	content := "gradient \"g\" {\n  space = \n}"
	items := complete(result, content, protocol.Position{Line: 1, Character: 10})

	for _, want := range []string{"rgb", "rgbw", "xyz", "luv", "lch"} {
		if !hasLabel(items, want) {
			t.Errorf("space completions %v missing %q", labels(items), want)
		}
	}
}

func TestCompleteGradientAttributes(t *testing.T) {
	result := Analyze("test.ledgrad", validSource)

	content := "gradient \"g\" {\n  \n}"
	items := complete(result, content, protocol.Position{Line: 1, Character: 2})

	for _, want := range []string{"from", "to", "space", "steps"} {
		if !hasLabel(items, want) {
			t.Errorf("gradient completions %v missing %q", labels(items), want)
		}
	}
}

func TestCompleteTopLevel(t *testing.T) {
	result := Analyze("test.ledgrad", validSource)

	content := "\n"
	items := complete(result, content, protocol.Position{Line: 0, Character: 0})

	for _, want := range []string{"meta", "palette", "gradient"} {
		if !hasLabel(items, want) {
			t.Errorf("top-level completions %v missing %q", labels(items), want)
		}
	}
}

func TestCompleteOutOfBounds(t *testing.T) {
	result := Analyze("test.ledgrad", validSource)

	if items := complete(result, "x\n", protocol.Position{Line: 9, Character: 0}); items != nil {
		t.Errorf("completion past document end = %v, want nil", labels(items))
	}
}

func TestDetermineBlockContext(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
		want blockContext
	}{
		{"root", "\n", 0, contextRoot},
		{"inside gradient", "gradient \"g\" {\n  \n}", 1, contextGradient},
		{"inside palette", "palette {\n  \n}", 1, contextPalette},
		{"inside meta", "meta {\n  \n}", 1, contextMeta},
		{"after closed block", "palette {\n  a = \"#ff0000\"\n}\n", 3, contextRoot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := strings.Split(tt.src, "\n")
			if got := determineBlockContext(lines, tt.line); got != tt.want {
				t.Errorf("determineBlockContext = %v, want %v", got, tt.want)
			}
		})
	}
}
