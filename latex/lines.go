package latex

import (
	"fmt"
	"strings"
)

// LineStyle selects the fill primitive of a DecoratedLine. Dashed and double
// reuse the dotted fill; LaTeX has no simple full-width primitive for them.
type LineStyle int

const (
	LineSolid LineStyle = iota
	LineDashed
	LineDotted
	LineDouble
)

func (s LineStyle) fill() string {
	if s == LineSolid {
		return "\\hrulefill"
	}
	return "\\dotfill"
}

// DecoratedLine is a horizontal rule with a centered bold label. The rule
// fills the remaining width on both sides of the label regardless of label
// length, so the whole construct always spans the text width.
type DecoratedLine struct {
	container
	Text  string
	Style LineStyle
}

func NewDecoratedLine(text string, style LineStyle) *DecoratedLine {
	return &DecoratedLine{Text: text, Style: style}
}

func (d *DecoratedLine) LaTeX() string {
	fill := d.Style.fill()
	var buf strings.Builder
	buf.WriteString("\\noindent\\makebox[\\textwidth]{")
	buf.WriteString(fill)
	if d.Text != "" {
		fmt.Fprintf(&buf, "\\ \\textbf{%s}\\ ", EscapeLabel(d.Text))
	}
	buf.WriteString(fill)
	buf.WriteString("}\n")
	return buf.String()
}

// Divider renders three copies of a symbol, centered, with a horizontal gap
// between them and vertical spacing before and after.
type Divider struct {
	container
	Symbol  string
	Gap     string
	Spacing string // default for both Before and After
	Before  string
	After   string
}

func NewDivider() *Divider {
	return &Divider{Symbol: "*", Gap: "2em", Spacing: "1em"}
}

func (d *Divider) LaTeX() string {
	before := d.Before
	if before == "" {
		before = d.Spacing
	}
	after := d.After
	if after == "" {
		after = d.Spacing
	}
	sym := EscapeLabel(d.Symbol)
	var buf strings.Builder
	fmt.Fprintf(&buf, "\\vspace{%s}\n", before)
	buf.WriteString("\\begin{center}\n")
	fmt.Fprintf(&buf, "%s\\hspace{%s}%s\\hspace{%s}%s\n", sym, d.Gap, sym, d.Gap, sym)
	buf.WriteString("\\end{center}\n")
	fmt.Fprintf(&buf, "\\vspace{%s}\n", after)
	return buf.String()
}

// BlankSpace reserves fixed vertical space, typically for handwritten work.
// The starred form keeps the space even at a page break.
type BlankSpace struct {
	container
	Height string
}

func NewBlankSpace(height string) *BlankSpace {
	return &BlankSpace{Height: height}
}

func (b *BlankSpace) LaTeX() string {
	return fmt.Sprintf("\\vspace*{%s}\n", b.Height)
}
