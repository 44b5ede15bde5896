package latex

import (
	"fmt"
	"strings"
)

// Text is a raw text run. The text is emitted verbatim; children follow on
// separate lines.
type Text struct {
	container
	Text string
}

func NewText(text string) *Text {
	return &Text{Text: text}
}

func (t *Text) LaTeX() string {
	return t.Text + t.childrenLaTeX("\n")
}

// Paragraph is a text block terminated by a blank line so LaTeX starts a new
// paragraph after it.
type Paragraph struct {
	container
	Text string
}

func NewParagraph(text string) *Paragraph {
	return &Paragraph{Text: text}
}

func (p *Paragraph) LaTeX() string {
	var buf strings.Builder
	buf.WriteString(p.Text)
	buf.WriteString("\n\n")
	for _, child := range p.children {
		buf.WriteString(child.LaTeX())
		buf.WriteString("\n")
	}
	return buf.String()
}

// ListBlock renders an itemize or enumerate environment. Item text passes
// through unescaped.
type ListBlock struct {
	container
	Items   []string
	Ordered bool
}

func NewListBlock(items []string, ordered bool) *ListBlock {
	return &ListBlock{Items: items, Ordered: ordered}
}

func (l *ListBlock) LaTeX() string {
	env := "itemize"
	if l.Ordered {
		env = "enumerate"
	}
	var buf strings.Builder
	fmt.Fprintf(&buf, "\\begin{%s}\n", env)
	for _, item := range l.Items {
		fmt.Fprintf(&buf, "    \\item %s\n", item)
	}
	fmt.Fprintf(&buf, "\\end{%s}\n", env)
	return buf.String()
}
