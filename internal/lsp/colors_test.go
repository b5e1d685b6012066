package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDocumentColors(t *testing.T) {
	result := Analyze("test.ledgrad", validSource)

	infos := documentColors(result)
	if len(infos) != 4 {
		t.Fatalf("len = %d, want 4", len(infos))
	}

	// First location is palette.ember = #ff4500.
	first := infos[0]
	if first.Color.Red != 1.0 {
		t.Errorf("Red = %v, want 1.0", first.Color.Red)
	}
	if first.Color.Alpha != 1.0 {
		t.Errorf("Alpha = %v, want 1.0", first.Color.Alpha)
	}

	if got := documentColors(nil); len(got) != 0 {
		t.Errorf("documentColors(nil) = %v, want empty", got)
	}
}

func TestColorPresentationHexLiteral(t *testing.T) {
	content := `  from = "#ff0000"`
	params := &protocol.ColorPresentationParams{
		Color: protocol.Color{Red: 0, Green: 1, Blue: 0, Alpha: 1},
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 9},
			End:   protocol.Position{Line: 0, Character: 18},
		},
	}

	got := colorPresentation(content, params)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Label != "#00ff00" {
		t.Errorf("Label = %q, want #00ff00", got[0].Label)
	}
	if got[0].TextEdit == nil || got[0].TextEdit.NewText != `"#00ff00"` {
		t.Errorf("TextEdit = %v, want quoted replacement", got[0].TextEdit)
	}
}

func TestColorPresentationPaletteRefNotReplaced(t *testing.T) {
	content := `  from = palette.ember`
	params := &protocol.ColorPresentationParams{
		Color: protocol.Color{Red: 1, Green: 0, Blue: 0, Alpha: 1},
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 9},
			End:   protocol.Position{Line: 0, Character: 22},
		},
	}

	if got := colorPresentation(content, params); len(got) != 0 {
		t.Errorf("presentations for palette ref = %v, want none", got)
	}
}
