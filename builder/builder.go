// Package builder provides the fluent, scope-bound construction API for
// latex documents. A DocumentBuilder owns the document scope; AddSection and
// AddDrawingSpace open nested scopes whose End operations hand control back
// to the enclosing builder. Precondition violations (missing font file,
// non-positive line spacing, ragged tables) are recorded at the offending
// call and surfaced by Build as the first error encountered.
package builder

import (
	"texgen/latex"
)

// DocumentBuilder is the document-level scope.
type DocumentBuilder struct {
	doc *latex.Document
	err error
}

// New starts a document. Title, author and date are metadata; the renderer
// does not emit a title block, but the title drives the default output name.
func New(title, author, date string) *DocumentBuilder {
	return &DocumentBuilder{doc: latex.NewDocument(title, author, date)}
}

func (b *DocumentBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Err returns the first recorded error, if any, without finishing the build.
func (b *DocumentBuilder) Err() error { return b.err }

// Build finishes the chain and returns the document, or the first error the
// chain recorded.
func (b *DocumentBuilder) Build() (*latex.Document, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.doc, nil
}

// SetFont selects the legacy CJK font family ("min" or "goth"); only used
// when no font file is configured.
func (b *DocumentBuilder) SetFont(font string) *DocumentBuilder {
	b.doc.Font = font
	return b
}

// SetFontFile configures an explicit font file; the file must exist.
func (b *DocumentBuilder) SetFontFile(path, name string) *DocumentBuilder {
	if b.err != nil {
		return b
	}
	if err := b.doc.SetFontFile(path, name); err != nil {
		b.fail(err)
	}
	return b
}

// SetMargins sets the provided page margins; empty edges stay unchanged.
func (b *DocumentBuilder) SetMargins(top, bottom, left, right string) *DocumentBuilder {
	if top != "" {
		b.doc.Margins.Top = top
	}
	if bottom != "" {
		b.doc.Margins.Bottom = bottom
	}
	if left != "" {
		b.doc.Margins.Left = left
	}
	if right != "" {
		b.doc.Margins.Right = right
	}
	return b
}

// SetLineSpacing sets the line-spacing stretch factor (must be positive).
func (b *DocumentBuilder) SetLineSpacing(spacing float64) *DocumentBuilder {
	if b.err != nil {
		return b
	}
	if err := b.doc.SetLineSpacing(spacing); err != nil {
		b.fail(err)
	}
	return b
}

// SetAbstract sets the abstract text.
func (b *DocumentBuilder) SetAbstract(abstract string) *DocumentBuilder {
	b.doc.SetAbstract(abstract)
	return b
}

// AddPackage registers a preamble package (options without brackets).
func (b *DocumentBuilder) AddPackage(name, options string) *DocumentBuilder {
	b.doc.Preamble().AddPackage(name, options)
	return b
}

// AddCommand appends a raw preamble declaration.
func (b *DocumentBuilder) AddCommand(cmd string) *DocumentBuilder {
	b.doc.Preamble().AddCommand(cmd)
	return b
}

// AddSection opens a section scope at the given level (1-5).
func (b *DocumentBuilder) AddSection(title string, level int, label string) *SectionBuilder {
	section := latex.NewSection(title, level, label)
	b.doc.Add(section)
	return &SectionBuilder{parent: b, section: section}
}

// AddChapter adds a chapter heading (book class).
func (b *DocumentBuilder) AddChapter(title, label string) *DocumentBuilder {
	b.doc.Add(latex.NewChapter(title, label))
	return b
}

// AddTableOfContents adds the TOC followed by a page break.
func (b *DocumentBuilder) AddTableOfContents() *DocumentBuilder {
	b.doc.Add(latex.NewTableOfContents())
	return b
}

// AddDrawingSpace opens a drawing-space scope at document level. Empty width
// and margin arguments select the defaults (70% text width, 5cm margin).
func (b *DocumentBuilder) AddDrawingSpace(width, marginWidth string) *DrawingSpaceBuilder[*DocumentBuilder] {
	space := latex.NewDrawingSpace(width, marginWidth)
	b.doc.Add(space)
	return &DrawingSpaceBuilder[*DocumentBuilder]{parent: b, root: b, space: space}
}

// AddElement attaches an already constructed element at document level.
func (b *DocumentBuilder) AddElement(el latex.Element) *DocumentBuilder {
	b.doc.Add(el)
	return b
}

func (b *DocumentBuilder) AddText(text string) *DocumentBuilder {
	b.doc.Add(latex.NewText(text))
	return b
}

func (b *DocumentBuilder) AddParagraph(text string) *DocumentBuilder {
	b.doc.Add(latex.NewParagraph(text))
	return b
}

func (b *DocumentBuilder) AddList(items []string, ordered bool) *DocumentBuilder {
	b.doc.Add(latex.NewListBlock(items, ordered))
	return b
}

func (b *DocumentBuilder) AddImage(path, caption, width, label string) *DocumentBuilder {
	b.doc.Add(latex.NewImage(path, caption, width, label))
	return b
}

// AddTikZ adds a TikZ drawing and registers the tikz package (plus any
// libraries) in the preamble.
func (b *DocumentBuilder) AddTikZ(code string, caption, label string, libraries []string, inline bool) *DocumentBuilder {
	b.doc.Add(addTikZ(b.doc, code, caption, label, libraries, inline))
	return b
}

func (b *DocumentBuilder) AddTextBox(content, title string, boxType latex.BoxType, style []latex.StyleOption) *DocumentBuilder {
	b.doc.Add(latex.NewTextBox(content, title, boxType, style))
	return b
}

func (b *DocumentBuilder) AddNote(content string) *DocumentBuilder {
	b.doc.Add(latex.NewNote(content))
	return b
}

func (b *DocumentBuilder) AddWarning(content string) *DocumentBuilder {
	b.doc.Add(latex.NewWarning(content))
	return b
}

func (b *DocumentBuilder) AddInfo(content string) *DocumentBuilder {
	b.doc.Add(latex.NewInfo(content))
	return b
}

func (b *DocumentBuilder) AddEquation(equation string, inline bool, label string) *DocumentBuilder {
	b.doc.Add(latex.NewEquation(equation, inline, label))
	return b
}

func (b *DocumentBuilder) AddAlign(equations []string, label string, numbered bool) *DocumentBuilder {
	b.doc.Add(latex.NewAlign(equations, label, numbered))
	return b
}

// AddTable adds a table; ragged rows record an error surfaced by Build.
func (b *DocumentBuilder) AddTable(headers []string, rows [][]string, caption, label string) *DocumentBuilder {
	table, err := latex.NewTable(headers, rows, caption, label)
	if err != nil {
		b.fail(err)
		return b
	}
	b.doc.Add(table)
	return b
}

// AddExercise adds a titled prompt with optional numbered sub-items laid out
// in the given number of columns (minimum 1). More than one column registers
// the multicol package.
func (b *DocumentBuilder) AddExercise(title, body string, items []string, columns int) *DocumentBuilder {
	b.doc.Add(addExercise(b.doc, title, body, items, columns))
	return b
}

func (b *DocumentBuilder) AddDivider() *DocumentBuilder {
	b.doc.Add(latex.NewDivider())
	return b
}

func (b *DocumentBuilder) AddDecoratedLine(text string, style latex.LineStyle) *DocumentBuilder {
	b.doc.Add(latex.NewDecoratedLine(text, style))
	return b
}

func (b *DocumentBuilder) AddBlankSpace(height string) *DocumentBuilder {
	b.doc.Add(latex.NewBlankSpace(height))
	return b
}

// addExercise builds the element and applies its build-time preamble side
// effect. The renderer repeats the registration for hand-built trees; both
// paths are idempotent.
func addExercise(doc *latex.Document, title, body string, items []string, columns int) *latex.Exercise {
	ex := latex.NewExercise(title, body, items, columns)
	if ex.Columns > 1 {
		doc.Preamble().AddPackage("multicol", "")
	}
	return ex
}

func addTikZ(doc *latex.Document, code, caption, label string, libraries []string, inline bool) *latex.TikZ {
	t := latex.NewTikZ(code, inline)
	t.Caption = caption
	t.Label = label
	t.Libraries = libraries
	doc.Preamble().AddPackage("tikz", "")
	if len(libraries) > 0 {
		doc.Preamble().AddCommandOnce(tikzLibraryCommand(libraries))
	}
	return t
}
