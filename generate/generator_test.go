package generate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"go.uber.org/zap"

	"texgen/builder"
	"texgen/config"
	"texgen/latex"
)

func fakeEngine(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script based fake engine")
	}

	script := `#!/bin/sh
for arg; do last="$arg"; done
touch "${last%.tex}.pdf"
`
	path := filepath.Join(t.TempDir(), "fakelatex")
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("Failed to write fake engine: %v", err)
	}
	return path
}

func testConfig(t *testing.T, engine string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Compilation.Engine = engine
	cfg.Directories.OutputDir = filepath.Join(t.TempDir(), "out")
	cfg.Directories.TempDir = t.TempDir()
	return cfg
}

func TestGenerateEndToEnd(t *testing.T) {
	cfg := testConfig(t, fakeEngine(t))

	doc, err := builder.New("Practice Sheet", "", "").
		AddSection("Warmup", 1, "").
		AddParagraph("A few problems.").
		EndSection().
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	g := NewGenerator(cfg, zap.NewNop())
	pdf, err := g.Generate(context.Background(), doc)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	want := filepath.Join(cfg.Directories.OutputDir, "practice-sheet.pdf")
	if pdf != want {
		t.Errorf("Generate() = %q, want %q", pdf, want)
	}
	if _, err := os.Stat(pdf); err != nil {
		t.Errorf("PDF not delivered: %v", err)
	}
}

func TestGenerateUntitledName(t *testing.T) {
	cfg := testConfig(t, fakeEngine(t))

	doc, err := builder.New("", "", "").AddText("body").Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	pdf, err := NewGenerator(cfg, zap.NewNop()).Generate(context.Background(), doc)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got := filepath.Base(pdf); got != "document.pdf" {
		t.Errorf("output name = %q, want document.pdf", got)
	}
}

func TestGenerateCleansUpTexByDefault(t *testing.T) {
	cfg := testConfig(t, fakeEngine(t))

	doc, err := builder.New("Tidy", "", "").AddText("x").Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if _, err := NewGenerator(cfg, zap.NewNop()).Generate(context.Background(), doc); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	entries, err := os.ReadDir(cfg.Directories.TempDir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	for _, workDir := range entries {
		files, err := os.ReadDir(filepath.Join(cfg.Directories.TempDir, workDir.Name()))
		if err != nil {
			t.Fatalf("ReadDir() error = %v", err)
		}
		for _, f := range files {
			if filepath.Ext(f.Name()) == ".tex" {
				t.Errorf("source %s left behind with cleanup enabled", f.Name())
			}
		}
	}
}

func TestSampleDocument(t *testing.T) {
	cfg := config.Default()
	doc, err := NewGenerator(cfg, zap.NewNop()).SampleDocument("")
	if err != nil {
		t.Fatalf("SampleDocument() error = %v", err)
	}
	if doc.Title != "Sample Document" {
		t.Errorf("Title = %q, want Sample Document", doc.Title)
	}
	if doc.FontFile() != "" {
		t.Errorf("FontFile() = %q, want no font without a URL", doc.FontFile())
	}
}

func TestSampleDocumentFontURLUsesConfiguredDir(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("fake font bytes"))
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.Directories.FontsDir = filepath.Join(t.TempDir(), "downloaded-fonts")

	doc, err := NewGenerator(cfg, zap.NewNop()).SampleDocument(srv.URL + "/WebFace.ttf")
	if err != nil {
		t.Fatalf("SampleDocument() error = %v", err)
	}

	// the download lands in the directory the configuration names
	if _, err := os.Stat(filepath.Join(cfg.Directories.FontsDir, "WebFace.ttf")); err != nil {
		t.Errorf("font not downloaded into configured fonts dir: %v", err)
	}
	if doc.FontName() != "WebFace" {
		t.Errorf("FontName() = %q, want WebFace", doc.FontName())
	}
}

func TestPickEngine(t *testing.T) {
	fontPath := filepath.Join(t.TempDir(), "Face.ttf")
	if err := os.WriteFile(fontPath, []byte("fake"), 0644); err != nil {
		t.Fatalf("Failed to write font file: %v", err)
	}

	tests := []struct {
		name     string
		engine   string
		fontFile bool
		want     string
	}{
		{"no font keeps engine", "pdflatex", false, "pdflatex"},
		{"font forces unicode engine", "pdflatex", true, "xelatex"},
		{"xelatex kept with font", "xelatex", true, "xelatex"},
		{"lualatex kept with font", "lualatex", true, "lualatex"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Compilation.Engine = tt.engine
			g := NewGenerator(cfg, zap.NewNop())

			doc := latex.NewDocument("", "", "")
			if tt.fontFile {
				if err := doc.SetFontFile(fontPath, ""); err != nil {
					t.Fatalf("SetFontFile() error = %v", err)
				}
			}

			if got := g.pickEngine(doc); got != tt.want {
				t.Errorf("pickEngine() = %q, want %q", got, tt.want)
			}
		})
	}
}
