package latex

import (
	"fmt"
	"strings"
)

// LaTeX serializes the whole document: preamble, document environment,
// legacy CJK wrapper when no font file is configured, abstract block and the
// depth-first render of the top-level children. The output is a complete,
// self-contained document; nothing is left for a later pass to resolve.
func (d *Document) LaTeX() string {
	d.registerRenderPackages()

	var buf strings.Builder
	buf.WriteString(d.preamble.Build(PreambleInfo{
		Margins:      d.Margins,
		LineSpacing:  d.lineSpacing,
		FontFile:     d.FontFile(),
		FontName:     d.fontName,
		BoldFontFile: d.boldFontFile,
	}))
	buf.WriteString("\n")

	buf.WriteString("\\begin{document}\n")

	legacyCJK := d.fontFile == ""
	if legacyCJK {
		font := d.Font
		if font == "" {
			font = DefaultCJKFont
		}
		fmt.Fprintf(&buf, "\\begin{CJK}{UTF8}{%s}\n", font)
	}

	// no automatic title block: title, author and date are metadata only

	if d.Abstract != "" {
		buf.WriteString("\\begin{abstract}\n")
		buf.WriteString(d.Abstract)
		buf.WriteString("\n\\end{abstract}\n\n")
	}

	for _, child := range d.children {
		buf.WriteString(child.LaTeX())
		buf.WriteString("\n")
	}

	if legacyCJK {
		buf.WriteString("\\end{CJK}\n")
	}
	buf.WriteString("\\end{document}\n")
	return buf.String()
}

// registerRenderPackages walks the tree and registers the packages whose
// need only shows at render time, so a hand-built tree gets the same
// preamble as a builder-built one. Registration is idempotent.
func (d *Document) registerRenderPackages() {
	var walk func(el Element)
	walk = func(el Element) {
		switch v := el.(type) {
		case *Exercise:
			if v.Columns > 1 {
				d.preamble.AddPackage("multicol", "")
			}
		case *TikZ:
			d.preamble.AddPackage("tikz", "")
			if len(v.Libraries) > 0 {
				d.preamble.AddCommandOnce(fmt.Sprintf("\\usetikzlibrary{%s}", strings.Join(v.Libraries, ",")))
			}
		case *DrawingSpace:
			if v.MarginContent != nil {
				walk(v.MarginContent)
			}
		}
		for _, child := range el.Children() {
			walk(child)
		}
	}
	for _, child := range d.children {
		walk(child)
	}
}
