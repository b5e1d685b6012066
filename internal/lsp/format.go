package lsp

import (
	"strings"

	"github.com/jsvensson/ledgrad/internal/format"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// fullDocumentRange returns a range spanning the entire content.
func fullDocumentRange(content string) protocol.Range {
	lines := strings.Split(content, "\n")
	lastLine := len(lines) - 1
	return protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: uint32(lastLine), Character: uint32(len(lines[lastLine]))},
	}
}

// textDocumentFormatting handles textDocument/formatting requests by
// replacing the whole document with its canonical form.
func (s *Server) textDocumentFormatting(_ *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	uri := string(params.TextDocument.URI)

	content, ok := s.docs.Content(uri)
	if !ok {
		return nil, nil
	}

	formatted, err := format.Format(content)
	if err != nil {
		return nil, err
	}
	if formatted == content {
		return nil, nil
	}

	return []protocol.TextEdit{
		{
			Range:   fullDocumentRange(content),
			NewText: formatted,
		},
	}, nil
}
