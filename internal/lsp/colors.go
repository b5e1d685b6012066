package lsp

import (
	"strings"

	"github.com/jsvensson/ledgrad/colorspace"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// colorToLSP converts an engine color to a protocol.Color, clamping to the
// displayable range the protocol expects.
func colorToLSP(c colorspace.RGB) protocol.Color {
	q := c.Clamped()
	return protocol.Color{
		Red:   float32(q.R),
		Green: float32(q.G),
		Blue:  float32(q.B),
		Alpha: 1.0,
	}
}

// documentColors converts the analysis result's color locations into LSP
// ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// colorPresentation produces color presentation options for a given color
// and range. Hex literals get a TextEdit replacing the old value; palette
// references are left alone so a color-picker edit never overwrites a
// reference with a literal.
func colorPresentation(content string, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	c := colorspace.RGB{
		R: float64(params.Color.Red),
		G: float64(params.Color.Green),
		B: float64(params.Color.Blue),
	}
	hexStr := c.Hex()

	text := extractText(content, params.Range)

	if strings.HasPrefix(text, "palette.") {
		return []protocol.ColorPresentation{}
	}

	if strings.HasPrefix(text, "\"") || strings.HasPrefix(text, "#") {
		newText := hexStr
		if strings.HasPrefix(text, "\"") {
			newText = "\"" + hexStr + "\""
		}

		return []protocol.ColorPresentation{
			{
				Label: hexStr,
				TextEdit: &protocol.TextEdit{
					Range:   params.Range,
					NewText: newText,
				},
			},
		}
	}

	return []protocol.ColorPresentation{}
}

// textDocumentDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	uri := string(params.TextDocument.URI)
	return documentColors(s.docs.Analysis(uri)), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	uri := string(params.TextDocument.URI)
	content, ok := s.docs.Content(uri)
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(content, params), nil
}
