package builder

import (
	"texgen/latex"
)

// DrawingSpaceBuilder is the scope of one drawing space. It is generic over
// the enclosing builder type so EndDrawingSpace returns to whichever scope
// opened it (document or section).
type DrawingSpaceBuilder[P any] struct {
	parent P
	root   *DocumentBuilder
	space  *latex.DrawingSpace
}

// EndDrawingSpace closes the scope and returns the enclosing builder.
func (db *DrawingSpaceBuilder[P]) EndDrawingSpace() P {
	return db.parent
}

// SetMarginContent places an independent element into the margin column. The
// element is resource-processed and rendered as part of the drawing space
// but outside the main children list.
func (db *DrawingSpaceBuilder[P]) SetMarginContent(el latex.Element) *DrawingSpaceBuilder[P] {
	db.space.SetMarginContent(el)
	return db
}

// AddElement attaches an already constructed element to the main column.
func (db *DrawingSpaceBuilder[P]) AddElement(el latex.Element) *DrawingSpaceBuilder[P] {
	db.space.Add(el)
	return db
}

func (db *DrawingSpaceBuilder[P]) AddText(text string) *DrawingSpaceBuilder[P] {
	db.space.Add(latex.NewText(text))
	return db
}

func (db *DrawingSpaceBuilder[P]) AddParagraph(text string) *DrawingSpaceBuilder[P] {
	db.space.Add(latex.NewParagraph(text))
	return db
}

func (db *DrawingSpaceBuilder[P]) AddEquation(equation string, inline bool, label string) *DrawingSpaceBuilder[P] {
	db.space.Add(latex.NewEquation(equation, inline, label))
	return db
}

func (db *DrawingSpaceBuilder[P]) AddTextBox(content, title string, boxType latex.BoxType, style []latex.StyleOption) *DrawingSpaceBuilder[P] {
	db.space.Add(latex.NewTextBox(content, title, boxType, style))
	return db
}

func (db *DrawingSpaceBuilder[P]) AddImage(path, caption, width, label string) *DrawingSpaceBuilder[P] {
	db.space.Add(latex.NewImage(path, caption, width, label))
	return db
}

func (db *DrawingSpaceBuilder[P]) AddTikZ(code string, caption, label string, libraries []string, inline bool) *DrawingSpaceBuilder[P] {
	db.space.Add(addTikZ(db.root.doc, code, caption, label, libraries, inline))
	return db
}

func (db *DrawingSpaceBuilder[P]) AddAlign(equations []string, label string, numbered bool) *DrawingSpaceBuilder[P] {
	db.space.Add(latex.NewAlign(equations, label, numbered))
	return db
}

func (db *DrawingSpaceBuilder[P]) AddBlankSpace(height string) *DrawingSpaceBuilder[P] {
	db.space.Add(latex.NewBlankSpace(height))
	return db
}
