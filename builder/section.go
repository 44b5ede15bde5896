package builder

import (
	"fmt"
	"strings"

	"texgen/latex"
)

func tikzLibraryCommand(libraries []string) string {
	return fmt.Sprintf("\\usetikzlibrary{%s}", strings.Join(libraries, ","))
}

// SectionBuilder is the scope of one section; EndSection returns to the
// document scope.
type SectionBuilder struct {
	parent  *DocumentBuilder
	section *latex.Section
}

// EndSection closes the section scope.
func (sb *SectionBuilder) EndSection() *DocumentBuilder {
	return sb.parent
}

// Numbered toggles the numbered (default) vs starred form of the section.
func (sb *SectionBuilder) Numbered(numbered bool) *SectionBuilder {
	sb.section.Numbered = numbered
	return sb
}

// AddDrawingSpace opens a drawing-space scope inside the section.
func (sb *SectionBuilder) AddDrawingSpace(width, marginWidth string) *DrawingSpaceBuilder[*SectionBuilder] {
	space := latex.NewDrawingSpace(width, marginWidth)
	sb.section.Add(space)
	return &DrawingSpaceBuilder[*SectionBuilder]{parent: sb, root: sb.parent, space: space}
}

// AddElement attaches an already constructed element to the section.
func (sb *SectionBuilder) AddElement(el latex.Element) *SectionBuilder {
	sb.section.Add(el)
	return sb
}

func (sb *SectionBuilder) AddText(text string) *SectionBuilder {
	sb.section.Add(latex.NewText(text))
	return sb
}

func (sb *SectionBuilder) AddParagraph(text string) *SectionBuilder {
	sb.section.Add(latex.NewParagraph(text))
	return sb
}

func (sb *SectionBuilder) AddList(items []string, ordered bool) *SectionBuilder {
	sb.section.Add(latex.NewListBlock(items, ordered))
	return sb
}

func (sb *SectionBuilder) AddImage(path, caption, width, label string) *SectionBuilder {
	sb.section.Add(latex.NewImage(path, caption, width, label))
	return sb
}

func (sb *SectionBuilder) AddTikZ(code string, caption, label string, libraries []string, inline bool) *SectionBuilder {
	sb.section.Add(addTikZ(sb.parent.doc, code, caption, label, libraries, inline))
	return sb
}

func (sb *SectionBuilder) AddTextBox(content, title string, boxType latex.BoxType, style []latex.StyleOption) *SectionBuilder {
	sb.section.Add(latex.NewTextBox(content, title, boxType, style))
	return sb
}

func (sb *SectionBuilder) AddNote(content string) *SectionBuilder {
	sb.section.Add(latex.NewNote(content))
	return sb
}

func (sb *SectionBuilder) AddWarning(content string) *SectionBuilder {
	sb.section.Add(latex.NewWarning(content))
	return sb
}

func (sb *SectionBuilder) AddInfo(content string) *SectionBuilder {
	sb.section.Add(latex.NewInfo(content))
	return sb
}

func (sb *SectionBuilder) AddEquation(equation string, inline bool, label string) *SectionBuilder {
	sb.section.Add(latex.NewEquation(equation, inline, label))
	return sb
}

func (sb *SectionBuilder) AddAlign(equations []string, label string, numbered bool) *SectionBuilder {
	sb.section.Add(latex.NewAlign(equations, label, numbered))
	return sb
}

func (sb *SectionBuilder) AddTable(headers []string, rows [][]string, caption, label string) *SectionBuilder {
	table, err := latex.NewTable(headers, rows, caption, label)
	if err != nil {
		sb.parent.fail(err)
		return sb
	}
	sb.section.Add(table)
	return sb
}

func (sb *SectionBuilder) AddExercise(title, body string, items []string, columns int) *SectionBuilder {
	sb.section.Add(addExercise(sb.parent.doc, title, body, items, columns))
	return sb
}

func (sb *SectionBuilder) AddDivider() *SectionBuilder {
	sb.section.Add(latex.NewDivider())
	return sb
}

func (sb *SectionBuilder) AddDecoratedLine(text string, style latex.LineStyle) *SectionBuilder {
	sb.section.Add(latex.NewDecoratedLine(text, style))
	return sb
}

func (sb *SectionBuilder) AddBlankSpace(height string) *SectionBuilder {
	sb.section.Add(latex.NewBlankSpace(height))
	return sb
}
