// Package format normalizes gradient program sources to HCL canonical
// style.
package format

import (
	"regexp"

	"github.com/hashicorp/hcl/v2/hclwrite"
)

var multipleBlankLines = regexp.MustCompile(`\n{3,}`)
var blankLineAfterOpenBrace = regexp.MustCompile(`\{\n\s*\n`)
var blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)

// Format returns the source formatted according to HCL canonical style:
// hclwrite handles indentation, attribute alignment and spacing, and the
// blank-line rules below keep block bodies compact.
//
// Formatting works on partial or invalid sources too, so it is safe to run
// while a file is still being edited.
func Format(content string) (string, error) {
	formatted := hclwrite.Format([]byte(content))
	out := multipleBlankLines.ReplaceAllString(string(formatted), "\n\n")
	out = blankLineAfterOpenBrace.ReplaceAllString(out, "{\n")
	out = blankLineBeforeCloseBrace.ReplaceAllString(out, "\n${1}")
	return out, nil
}
