package latex

import "strings"

var labelEscaper = strings.NewReplacer("{", `\{`, "}", `\}`)

// EscapeLabel prepares a literal string for label positions: section and box
// titles, exercise headers, divider symbols and decorated-line captions. Only
// the brace characters are escaped since they would otherwise alter grouping;
// the backslash itself passes through.
//
// Prose, math and exercise body fields are deliberately not escaped at all:
// callers own the correctness of raw LaTeX they inject there.
func EscapeLabel(s string) string {
	return labelEscaper.Replace(s)
}
