package latex

import (
	"fmt"
	"strings"
)

// BoxType selects the rendering strategy for a TextBox.
type BoxType int

const (
	// BoxTypeColor renders a tcolorbox environment.
	BoxTypeColor BoxType = iota
	// BoxTypeFancy renders an fbox around a parbox with an optional bold title.
	BoxTypeFancy
	// BoxTypeSimple renders a bare fbox/parbox one-liner.
	BoxTypeSimple
)

// StyleOption is one key=value option of a tcolorbox. Options keep their
// declaration order in the output.
type StyleOption struct {
	Key   string
	Value string
}

// TextBox is a boxed callout. Note, warning and info boxes are preset
// parameterizations of this one type. Content passes through unescaped;
// the title is label-escaped.
type TextBox struct {
	container
	Content string
	Title   string
	Type    BoxType
	Style   []StyleOption
}

func NewTextBox(content, title string, boxType BoxType, style []StyleOption) *TextBox {
	return &TextBox{Content: content, Title: title, Type: boxType, Style: style}
}

// NewNote returns a yellow callout titled 注意.
func NewNote(content string) *TextBox {
	return NewTextBox(content, "注意", BoxTypeColor, []StyleOption{
		{Key: "colback", Value: "yellow!5!white"},
		{Key: "colframe", Value: "yellow!75!black"},
	})
}

// NewWarning returns a red callout titled 警告.
func NewWarning(content string) *TextBox {
	return NewTextBox(content, "警告", BoxTypeColor, []StyleOption{
		{Key: "colback", Value: "red!5!white"},
		{Key: "colframe", Value: "red!75!black"},
	})
}

// NewInfo returns a blue callout titled 情報.
func NewInfo(content string) *TextBox {
	return NewTextBox(content, "情報", BoxTypeColor, []StyleOption{
		{Key: "colback", Value: "blue!5!white"},
		{Key: "colframe", Value: "blue!75!black"},
	})
}

func (b *TextBox) LaTeX() string {
	switch b.Type {
	case BoxTypeFancy:
		return b.fancyLaTeX()
	case BoxTypeSimple:
		return fmt.Sprintf("\\fbox{\\parbox{0.9\\textwidth}{%s}}\n", b.Content)
	default:
		return b.colorLaTeX()
	}
}

func (b *TextBox) colorLaTeX() string {
	var opts []string
	for _, opt := range b.Style {
		opts = append(opts, fmt.Sprintf("%s=%s", opt.Key, opt.Value))
	}
	if b.Title != "" {
		opts = append(opts, fmt.Sprintf("title={%s}", EscapeLabel(b.Title)))
	}
	var buf strings.Builder
	buf.WriteString("\\begin{tcolorbox}")
	if len(opts) > 0 {
		fmt.Fprintf(&buf, "[%s]", strings.Join(opts, ", "))
	}
	buf.WriteString("\n")
	buf.WriteString(b.Content)
	buf.WriteString("\n")
	for _, child := range b.children {
		buf.WriteString(child.LaTeX())
	}
	buf.WriteString("\\end{tcolorbox}\n")
	return buf.String()
}

func (b *TextBox) fancyLaTeX() string {
	var buf strings.Builder
	buf.WriteString("\\fbox{\n")
	buf.WriteString("    \\parbox{0.9\\textwidth}{\n")
	if b.Title != "" {
		fmt.Fprintf(&buf, "        \\textbf{%s}\\\\\n", EscapeLabel(b.Title))
	}
	fmt.Fprintf(&buf, "        %s\n", b.Content)
	for _, child := range b.children {
		buf.WriteString("        ")
		buf.WriteString(strings.ReplaceAll(child.LaTeX(), "\n", "\n        "))
	}
	buf.WriteString("    }\n")
	buf.WriteString("}\n")
	return buf.String()
}
