package lsp

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/ledgrad/colorspace"
	"github.com/jsvensson/ledgrad/internal/parser"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/zclconf/go-cty/cty"
)

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
)

// gradientAttributes are the attributes a gradient block understands.
var gradientAttributes = map[string]bool{
	"space": true,
	"steps": true,
	"from":  true,
	"to":    true,
}

// AnalysisResult holds all information produced by analyzing a gradient
// program file.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Palette     map[string]colorspace.RGB
	Symbols     map[string]protocol.Range // "palette.ember" -> definition range
	Colors      []ColorLocation
}

// ColorLocation records a resolved color at a specific source position.
type ColorLocation struct {
	Range protocol.Range
	Color colorspace.RGB
	IsRef bool // true if this is a palette reference (not a hex literal)
}

// hclPosToLSP converts an HCL position to an LSP position.
// HCL positions are 1-based; LSP positions are 0-based.
func hclPosToLSP(pos hcl.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(pos.Line - 1),
		Character: uint32(pos.Column - 1),
	}
}

// hclRangeToLSP converts an HCL range to an LSP range.
func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

// Analyze parses program content from memory and produces diagnostics, a
// symbol table and color locations. It collects all errors rather than
// short-circuiting on the first.
func Analyze(filename, content string) *AnalysisResult {
	result := &AnalysisResult{
		Palette: make(map[string]colorspace.RGB),
		Symbols: make(map[string]protocol.Range),
	}

	file, diags := hclsyntax.ParseConfig([]byte(content), filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		for _, d := range diags {
			result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(d))
		}
		// Cannot proceed with semantic analysis if syntax is broken
		return result
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		result.addError(hcl.Range{}, "internal error: parsed body is not *hclsyntax.Body")
		return result
	}

	var gradientBlocks []*hclsyntax.Block
	for _, block := range body.Blocks {
		switch block.Type {
		case "palette":
			result.analyzePaletteBody(block.Body)
		case "gradient":
			gradientBlocks = append(gradientBlocks, block)
		case "meta":
			// Free-form metadata, nothing to validate.
		default:
			result.addWarning(block.DefRange(), fmt.Sprintf("unknown block %q (valid: meta, palette, gradient)", block.Type))
		}
	}

	ctx := parser.BuildEvalContext(result.Palette)
	for _, block := range gradientBlocks {
		result.analyzeGradientBlock(block, ctx)
	}

	if len(gradientBlocks) == 0 {
		result.addWarning(hcl.Range{
			Filename: filename,
			Start:    hcl.Pos{Line: 1, Column: 1},
			End:      hcl.Pos{Line: 1, Column: 1},
		}, "no gradient blocks defined")
	}

	return result
}

// analyzePaletteBody walks the palette attributes in source order so
// diagnostics come out deterministically. Palette entries may use the color
// functions but not reference other palette entries.
func (r *AnalysisResult) analyzePaletteBody(body *hclsyntax.Body) {
	ctx := &hcl.EvalContext{Functions: parser.Functions()}

	names := make([]string, 0, len(body.Attributes))
	for name := range body.Attributes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return body.Attributes[names[i]].SrcRange.Start.Byte < body.Attributes[names[j]].SrcRange.Start.Byte
	})

	for _, name := range names {
		attr := body.Attributes[name]
		symbolName := "palette." + name
		r.Symbols[symbolName] = hclRangeToLSP(attr.SrcRange)

		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() {
			r.addError(attr.SrcRange, fmt.Sprintf("evaluating %s: %s", symbolName, diags.Error()))
			continue
		}

		c, err := resolveColorValue(val)
		if err != nil {
			r.addError(attr.SrcRange, fmt.Sprintf("%s: %s", symbolName, err.Error()))
			continue
		}

		r.Palette[name] = c
		r.Colors = append(r.Colors, ColorLocation{
			Range: hclRangeToLSP(attr.Expr.Range()),
			Color: c,
			IsRef: isReferenceExpr(attr.Expr),
		})
	}

	for _, block := range body.Blocks {
		r.addError(block.DefRange(), "palette entries must be flat color attributes")
	}
}

// analyzeGradientBlock validates one gradient block against the palette.
func (r *AnalysisResult) analyzeGradientBlock(block *hclsyntax.Block, ctx *hcl.EvalContext) {
	if len(block.Labels) != 1 || block.Labels[0] == "" {
		r.addError(block.DefRange(), "gradient block needs a name label")
	}

	for name, attr := range block.Body.Attributes {
		if !gradientAttributes[name] {
			r.addWarning(attr.SrcRange, fmt.Sprintf("unknown gradient attribute %q (valid: space, steps, from, to)", name))
			continue
		}

		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() {
			r.addError(attr.SrcRange, fmt.Sprintf("evaluating %s: %s", name, diags.Error()))
			continue
		}

		switch name {
		case "from", "to":
			c, err := resolveColorValue(val)
			if err != nil {
				r.addError(attr.SrcRange, fmt.Sprintf("%s: %s", name, err.Error()))
				continue
			}
			r.Colors = append(r.Colors, ColorLocation{
				Range: hclRangeToLSP(attr.Expr.Range()),
				Color: c,
				IsRef: isReferenceExpr(attr.Expr),
			})
		case "space":
			if val.Type() != cty.String {
				r.addError(attr.SrcRange, "space must be a string")
				continue
			}
			if _, err := colorspace.ParseSpace(val.AsString()); err != nil {
				r.addError(attr.SrcRange, err.Error())
			}
		case "steps":
			if val.Type() != cty.Number {
				r.addError(attr.SrcRange, "steps must be a number")
				continue
			}
			steps, _ := val.AsBigFloat().Int64()
			if steps < 2 {
				r.addError(attr.SrcRange, fmt.Sprintf("steps must be at least 2, got %d", steps))
			}
		}
	}

	for _, required := range []string{"from", "to"} {
		if _, ok := block.Body.Attributes[required]; !ok {
			r.addError(block.DefRange(), fmt.Sprintf("gradient is missing required attribute %q", required))
		}
	}
}

// resolveColorValue extracts a color from a cty string value.
func resolveColorValue(val cty.Value) (colorspace.RGB, error) {
	if val.Type() != cty.String {
		return colorspace.RGB{}, fmt.Errorf("expected a color string, got %s", val.Type().FriendlyName())
	}
	return colorspace.ParseHex(val.AsString())
}

// isReferenceExpr reports whether an expression is a traversal like
// palette.ember rather than a literal or function call.
func isReferenceExpr(expr hclsyntax.Expression) bool {
	_, ok := expr.(*hclsyntax.ScopeTraversalExpr)
	return ok
}

// hclDiagToLSP converts an HCL diagnostic to an LSP diagnostic.
func hclDiagToLSP(d *hcl.Diagnostic) protocol.Diagnostic {
	sev := DiagError
	if d.Severity == hcl.DiagWarning {
		sev = DiagWarning
	}

	diag := protocol.Diagnostic{
		Severity: &sev,
		Message:  d.Summary,
		Source:   strPtr(serverName),
	}

	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}

	if d.Subject != nil {
		diag.Range = hclRangeToLSP(*d.Subject)
	}

	return diag
}

// addError adds an error-level diagnostic at the given range.
func (r *AnalysisResult) addError(rng hcl.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &DiagError,
		Source:   strPtr(serverName),
		Message:  msg,
	})
}

// addWarning adds a warning-level diagnostic at the given range.
func (r *AnalysisResult) addWarning(rng hcl.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &DiagWarning,
		Source:   strPtr(serverName),
		Message:  msg,
	})
}

func strPtr(s string) *string {
	return &s
}
