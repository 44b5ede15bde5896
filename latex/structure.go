package latex

import (
	"fmt"
	"strings"
)

var sectionCommands = map[int]string{
	1: "\\section",
	2: "\\subsection",
	3: "\\subsubsection",
	4: "\\paragraph",
	5: "\\subparagraph",
}

// Section is a structural container with a title and a nesting level from 1
// (section) to 5 (subparagraph). Levels outside that range fall back to
// \section. Unnumbered sections use the starred command form, which also
// keeps them out of the table of contents.
type Section struct {
	container
	Title    string
	Level    int
	Label    string
	Numbered bool
}

func NewSection(title string, level int, label string) *Section {
	return &Section{Title: title, Level: level, Label: label, Numbered: true}
}

func (s *Section) LaTeX() string {
	cmd, ok := sectionCommands[s.Level]
	if !ok {
		cmd = sectionCommands[1]
	}
	if !s.Numbered {
		cmd += "*"
	}
	var buf strings.Builder
	fmt.Fprintf(&buf, "%s{%s}\n", cmd, EscapeLabel(s.Title))
	if s.Label != "" {
		fmt.Fprintf(&buf, "\\label{%s}\n", s.Label)
	}
	buf.WriteString("\n")
	for _, child := range s.children {
		buf.WriteString(child.LaTeX())
		buf.WriteString("\n")
	}
	return buf.String()
}

// Chapter is the book-class structural container.
type Chapter struct {
	container
	Title string
	Label string
}

func NewChapter(title, label string) *Chapter {
	return &Chapter{Title: title, Label: label}
}

func (c *Chapter) LaTeX() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "\\chapter{%s}\n", EscapeLabel(c.Title))
	if c.Label != "" {
		fmt.Fprintf(&buf, "\\label{%s}\n", c.Label)
	}
	buf.WriteString("\n")
	for _, child := range c.children {
		buf.WriteString(child.LaTeX())
		buf.WriteString("\n")
	}
	return buf.String()
}

// TableOfContents emits the TOC followed by a page break.
type TableOfContents struct {
	container
}

func NewTableOfContents() *TableOfContents {
	return &TableOfContents{}
}

func (t *TableOfContents) LaTeX() string {
	return "\\tableofcontents\n\\newpage\n"
}

// DrawingSpace reserves a narrow content column with a margin column next to
// it, typically left blank for handwritten work. The margin column renders
// either an independent margin-content element or a layout-preserving
// placeholder so the two-column block never collapses. The trailing \par and
// fixed vertical space keep following content clear of the block regardless
// of which column is taller.
type DrawingSpace struct {
	container
	Width         string // main column width expression
	MarginWidth   string // margin column width expression
	MarginContent Element
}

func NewDrawingSpace(width, marginWidth string) *DrawingSpace {
	if width == "" {
		width = "0.7\\textwidth"
	}
	if marginWidth == "" {
		marginWidth = "5cm"
	}
	return &DrawingSpace{Width: width, MarginWidth: marginWidth}
}

// SetMarginContent sets the element rendered in the margin column.
func (d *DrawingSpace) SetMarginContent(el Element) {
	d.MarginContent = el
}

func (d *DrawingSpace) LaTeX() string {
	var buf strings.Builder
	buf.WriteString("\\noindent\n")
	fmt.Fprintf(&buf, "\\begin{minipage}[t]{%s}\n", d.Width)
	for _, child := range d.children {
		buf.WriteString(child.LaTeX())
		buf.WriteString("\n")
	}
	buf.WriteString("\\end{minipage}%\n")
	buf.WriteString("\\hfill\n")
	fmt.Fprintf(&buf, "\\begin{minipage}[t]{%s}\n", d.MarginWidth)
	if d.MarginContent != nil {
		buf.WriteString(d.MarginContent.LaTeX())
	} else {
		buf.WriteString("~\n")
	}
	buf.WriteString("\\end{minipage}\n")
	buf.WriteString("\\par\n")
	buf.WriteString("\\vspace{1em}\n")
	return buf.String()
}

// ProcessResources processes the children and, when present, the margin
// content, which may own file-backed resources of its own.
func (d *DrawingSpace) ProcessResources(outputDir string) (map[string]string, error) {
	result, err := d.container.ProcessResources(outputDir)
	if err != nil {
		return nil, err
	}
	if d.MarginContent != nil {
		m, err := d.MarginContent.ProcessResources(outputDir)
		if err != nil {
			return nil, err
		}
		for k, v := range m {
			result[k] = v
		}
	}
	return result, nil
}

// Exercise is a titled prompt with free-form body text and optional numbered
// sub-items. A column count above one lays the sub-items out in a multicols
// region; rendering a document containing such an exercise registers the
// multicol package in the preamble.
type Exercise struct {
	container
	Title   string
	Body    string
	Items   []string
	Columns int
}

func NewExercise(title, body string, items []string, columns int) *Exercise {
	if columns < 1 {
		columns = 1
	}
	return &Exercise{Title: title, Body: body, Items: items, Columns: columns}
}

func (e *Exercise) LaTeX() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "\\textbf{%s} %s\n", EscapeLabel(e.Title), e.Body)
	if len(e.Items) > 0 {
		// compensate the block spacing the enumerate would add
		buf.WriteString("\\vspace{-0.5\\baselineskip}\n")
		if e.Columns > 1 {
			fmt.Fprintf(&buf, "\\begin{multicols}{%d}\n", e.Columns)
		}
		buf.WriteString("\\begin{enumerate}\n")
		for n, item := range e.Items {
			fmt.Fprintf(&buf, "    \\item[(%d)] %s\n", n+1, item)
		}
		buf.WriteString("\\end{enumerate}\n")
		if e.Columns > 1 {
			buf.WriteString("\\end{multicols}\n")
		}
	}
	for _, child := range e.children {
		buf.WriteString(child.LaTeX())
		buf.WriteString("\n")
	}
	return buf.String()
}
