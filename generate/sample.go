package generate

import (
	"texgen/builder"
	"texgen/latex"
)

// SampleDocument builds the demonstration document compiled by the sample
// command. A font URL, when given, is downloaded into the configured fonts
// directory and becomes the document font.
func (g *Generator) SampleDocument(fontURL string) (*latex.Document, error) {
	b := builder.New("Sample Document", "texgen", "2026")
	if fontURL != "" {
		b.SetFontFromURL(fontURL, "", g.cfg.Directories.FontsDir)
	}
	return b.
		SetMargins("2cm", "2cm", "2.5cm", "2.5cm").
		SetLineSpacing(1.2).
		AddTableOfContents().
		AddSection("Introduction", 1, "sec:intro").
		AddParagraph("This document demonstrates the available building blocks.").
		AddNote("Generated by the sample command.").
		AddEquation("E = mc^2", false, "eq:energy").
		EndSection().
		AddSection("Practice", 1, "").
		AddExercise("Problem 1.", "Evaluate the following expressions.", []string{"$2+2$", "$3 \\times 4$", "$10 / 5$", "$7-1$"}, 2).
		AddDrawingSpace("", "").
		AddText("Work area").
		EndDrawingSpace().
		EndSection().
		Build()
}
