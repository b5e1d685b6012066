package lsp

import (
	"sort"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// blockContext represents the kind of block the cursor is in.
type blockContext int

const (
	contextRoot     blockContext = iota
	contextMeta                  // inside meta {}
	contextPalette               // inside palette {}
	contextGradient              // inside gradient "x" {}
)

// topLevelBlocks are the valid top-level block names.
var topLevelBlocks = []string{"meta", "palette", "gradient"}

// spaceNames are the valid values for a gradient's space attribute.
var spaceNames = []string{"rgb", "rgbw", "xyz", "luv", "lch"}

// complete produces completion items given an analysis result, document
// content and cursor position. The core logic is decoupled from the LSP
// protocol handler for testability.
func complete(result *AnalysisResult, content string, pos protocol.Position) []protocol.CompletionItem {
	lines := strings.Split(content, "\n")
	if int(pos.Line) >= len(lines) {
		return nil
	}

	line := lines[pos.Line]
	charPos := min(int(pos.Character), len(line))
	textBeforeCursor := line[:charPos]

	// palette.<...> path completion takes precedence anywhere.
	if items := tryPaletteCompletion(result, textBeforeCursor); items != nil {
		return items
	}

	ctx := determineBlockContext(lines, int(pos.Line))

	// After "=" we offer values: palette references and color functions,
	// or space names for the space attribute.
	if eq := strings.LastIndex(textBeforeCursor, "="); eq != -1 {
		if strings.Contains(textBeforeCursor[:eq], "space") {
			return spaceCompletions()
		}
		return valueCompletions()
	}

	switch ctx {
	case contextGradient:
		return gradientAttributeCompletions()
	case contextRoot:
		return topLevelCompletions()
	}

	return nil
}

// tryPaletteCompletion checks if the text before the cursor ends with a
// "palette." prefix and returns one item per palette entry.
func tryPaletteCompletion(result *AnalysisResult, textBeforeCursor string) []protocol.CompletionItem {
	if result == nil || len(result.Palette) == 0 {
		return nil
	}

	idx := strings.LastIndex(textBeforeCursor, "palette.")
	if idx == -1 {
		return nil
	}

	names := make([]string, 0, len(result.Palette))
	for name := range result.Palette {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]protocol.CompletionItem, 0, len(names))
	for _, name := range names {
		hex := result.Palette[name].Hex()
		items = append(items, protocol.CompletionItem{
			Label:  name,
			Kind:   completionKindPtr(protocol.CompletionItemKindColor),
			Detail: strPtr(hex),
		})
	}
	return items
}

// determineBlockContext scans backwards from the cursor line to find the
// nearest unclosed block header.
func determineBlockContext(lines []string, cursorLine int) blockContext {
	depth := 0
	for i := min(cursorLine, len(lines)-1); i >= 0; i-- {
		line := lines[i]
		depth += strings.Count(line, "}") - strings.Count(line, "{")

		// depth going negative means this line opens a block the cursor is
		// still inside.
		if depth < 0 {
			trimmed := strings.TrimSpace(line)
			switch {
			case strings.HasPrefix(trimmed, "meta"):
				return contextMeta
			case strings.HasPrefix(trimmed, "palette"):
				return contextPalette
			case strings.HasPrefix(trimmed, "gradient"):
				return contextGradient
			}
			// Unknown block header; treat as root so nothing misleading
			// gets offered.
			return contextRoot
		}
	}
	return contextRoot
}

// gradientAttributeCompletions offers the gradient block attributes.
func gradientAttributeCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet
	kind := protocol.CompletionItemKindProperty

	attrs := []struct {
		name    string
		snippet string
		detail  string
	}{
		{"from", `from = ${1:palette.}`, "start color"},
		{"to", `to = ${1:palette.}`, "end color"},
		{"space", `space = "${1:luv}"`, "interpolation space (rgb, rgbw, xyz, luv, lch)"},
		{"steps", `steps = ${1:32}`, "number of samples"},
	}

	items := make([]protocol.CompletionItem, 0, len(attrs))
	for _, a := range attrs {
		snippet := a.snippet
		items = append(items, protocol.CompletionItem{
			Label:            a.name,
			Kind:             &kind,
			Detail:           strPtr(a.detail),
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		})
	}
	return items
}

// spaceCompletions offers the interpolation space names.
func spaceCompletions() []protocol.CompletionItem {
	kind := protocol.CompletionItemKindEnumMember
	items := make([]protocol.CompletionItem, 0, len(spaceNames))
	for _, name := range spaceNames {
		quoted := `"` + name + `"`
		items = append(items, protocol.CompletionItem{
			Label:      name,
			Kind:       &kind,
			InsertText: &quoted,
		})
	}
	return items
}

// valueCompletions offers the color functions and the palette prefix.
func valueCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet

	lightenSnippet := "lighten(${1:color}, ${2:10})"
	saturateSnippet := "saturate(${1:color}, ${2:1.2})"
	mixSnippet := "mix(${1:a}, ${2:b}, ${3:0.5})"
	whiteSnippet := "white(${1:color})"
	paletteSnippet := "palette."

	return []protocol.CompletionItem{
		{
			Label:            "lighten",
			Kind:             completionKindPtr(protocol.CompletionItemKindFunction),
			Detail:           strPtr("lighten(color, amount)"),
			InsertText:       &lightenSnippet,
			InsertTextFormat: &snippetFormat,
		},
		{
			Label:            "saturate",
			Kind:             completionKindPtr(protocol.CompletionItemKindFunction),
			Detail:           strPtr("saturate(color, factor)"),
			InsertText:       &saturateSnippet,
			InsertTextFormat: &snippetFormat,
		},
		{
			Label:            "mix",
			Kind:             completionKindPtr(protocol.CompletionItemKindFunction),
			Detail:           strPtr("mix(a, b, t)"),
			InsertText:       &mixSnippet,
			InsertTextFormat: &snippetFormat,
		},
		{
			Label:            "white",
			Kind:             completionKindPtr(protocol.CompletionItemKindFunction),
			Detail:           strPtr("white(color)"),
			InsertText:       &whiteSnippet,
			InsertTextFormat: &snippetFormat,
		},
		{
			Label:      "palette",
			Kind:       completionKindPtr(protocol.CompletionItemKindModule),
			Detail:     strPtr("palette color reference"),
			InsertText: &paletteSnippet,
		},
	}
}

// topLevelCompletions offers block snippets at the document root.
func topLevelCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet
	kind := protocol.CompletionItemKindSnippet

	var items []protocol.CompletionItem
	for _, name := range topLevelBlocks {
		snippet := name + " {\n  $0\n}"
		if name == "gradient" {
			snippet = "gradient \"${1:name}\" {\n  $0\n}"
		}
		items = append(items, protocol.CompletionItem{
			Label:            name,
			Kind:             &kind,
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		})
	}
	return items
}

func completionKindPtr(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}

// textDocumentCompletion handles textDocument/completion requests.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	uri := string(params.TextDocument.URI)

	content, ok := s.docs.Content(uri)
	if !ok {
		return nil, nil
	}

	items := complete(s.docs.Analysis(uri), content, params.Position)
	return items, nil
}
