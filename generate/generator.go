// Package generate orchestrates a full document run: resource staging,
// serialization, compilation and delivery of the final PDF.
package generate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"texgen/compile"
	"texgen/config"
	"texgen/latex"
)

// Generator drives document production end to end.
type Generator struct {
	cfg *config.Config
	log *zap.Logger
}

// NewGenerator returns a generator using the supplied configuration.
func NewGenerator(cfg *config.Config, log *zap.Logger) *Generator {
	return &Generator{cfg: cfg, log: log}
}

// Generate processes document resources, serializes the markup, compiles it
// and places the resulting PDF into the configured output directory. It
// returns the path of the produced PDF.
func (g *Generator) Generate(ctx context.Context, doc *latex.Document) (string, error) {
	workDir, err := g.prepareWorkDir()
	if err != nil {
		return "", err
	}

	g.log.Debug("Using work directory", zap.String("dir", workDir))

	if _, err := doc.ProcessResources(workDir); err != nil {
		return "", fmt.Errorf("unable to process document resources: %w", err)
	}

	texPath := filepath.Join(workDir, "document.tex")
	if err := os.WriteFile(texPath, []byte(doc.LaTeX()), 0644); err != nil {
		return "", fmt.Errorf("unable to write document source: %w", err)
	}

	comp := compile.NewCompiler(&g.cfg.Compilation, g.log)
	comp.Engine = g.pickEngine(doc)

	pdfPath, err := comp.Compile(ctx, texPath)
	if err != nil {
		return "", err
	}

	outPath, err := g.deliver(pdfPath, doc.Title)
	if err != nil {
		return "", err
	}
	g.log.Info("Document generated", zap.String("pdf", outPath))

	if err := compile.Cleanup(texPath, &g.cfg.FileManagement, g.log); err != nil {
		g.log.Warn("Cleanup finished with errors", zap.Error(err))
	}
	return outPath, nil
}

// prepareWorkDir creates a unique working directory so concurrent runs never
// step on each other's auxiliary files.
func (g *Generator) prepareWorkDir() (string, error) {
	base := g.cfg.Directories.TempDir
	if base == "" {
		base = os.TempDir()
	}
	workDir := filepath.Join(base, "texgen-"+uuid.NewString())
	if err := os.MkdirAll(workDir, 0755); err != nil {
		return "", fmt.Errorf("unable to create work directory: %w", err)
	}
	return workDir, nil
}

// pickEngine honors the configured engine unless the document carries a font
// file - file based fonts need fontspec, which only the Unicode engines
// support.
func (g *Generator) pickEngine(doc *latex.Document) string {
	engine := g.cfg.Compilation.Engine
	if doc.FontFile() == "" {
		return engine
	}
	switch engine {
	case "xelatex", "lualatex":
		return engine
	}
	g.log.Warn("Configured engine cannot load font files, switching to xelatex",
		zap.String("configured", engine),
		zap.String("font", doc.FontFile()))
	return "xelatex"
}

// deliver moves the compiled PDF into the output directory under its final
// name.
func (g *Generator) deliver(pdfPath, title string) (string, error) {
	if err := os.MkdirAll(g.cfg.Directories.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("unable to create output directory: %w", err)
	}

	name := "document.pdf"
	if title != "" {
		name = slug.Make(title) + ".pdf"
	}
	outPath := filepath.Join(g.cfg.Directories.OutputDir, name)

	if err := os.Rename(pdfPath, outPath); err != nil {
		// rename does not work across filesystems, fall back to copying
		if err := copyFile(pdfPath, outPath); err != nil {
			return "", fmt.Errorf("unable to deliver PDF: %w", err)
		}
		if err := os.Remove(pdfPath); err != nil {
			g.log.Warn("Unable to remove work copy of PDF", zap.Error(err))
		}
	}
	return outPath, nil
}

func copyFile(from, to string) error {
	in, err := os.Open(from)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(to)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
