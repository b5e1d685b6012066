package lsp

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// paletteRefAtCursor extracts the palette reference under the cursor, e.g.
// "palette.ember" with the cursor anywhere on either part. Returns "" when
// the cursor is not on a palette reference.
func paletteRefAtCursor(line string, character uint32) string {
	col := int(character)
	if col >= len(line) {
		return ""
	}
	if !isIdentChar(line[col]) {
		return ""
	}

	start := col
	for start > 0 && isIdentChar(line[start-1]) {
		start--
	}
	end := col
	for end < len(line) && isIdentChar(line[end]) {
		end++
	}

	word := line[start:end]
	if !strings.HasPrefix(word, "palette.") {
		return ""
	}
	return word
}

// isIdentChar reports whether b can appear in a dotted reference path.
func isIdentChar(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b == '_' || b == '.'
}

// definition resolves a palette reference at the cursor to the location of
// its palette entry. Returns nil if the cursor is not on a reference or the
// referenced entry does not exist.
func definition(result *AnalysisResult, content string, uri string, pos protocol.Position) *protocol.Location {
	if result == nil {
		return nil
	}

	lines := strings.Split(content, "\n")
	if int(pos.Line) >= len(lines) {
		return nil
	}

	ref := paletteRefAtCursor(lines[pos.Line], pos.Character)
	if ref == "" {
		return nil
	}

	symRange, ok := result.Symbols[ref]
	if !ok {
		return nil
	}

	return &protocol.Location{
		URI:   protocol.DocumentUri(uri),
		Range: symRange,
	}
}

// textDocumentDefinition handles textDocument/definition requests.
func (s *Server) textDocumentDefinition(_ *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	uri := string(params.TextDocument.URI)

	content, ok := s.docs.Content(uri)
	if !ok {
		return nil, nil
	}

	return definition(s.docs.Analysis(uri), content, uri, params.Position), nil
}
