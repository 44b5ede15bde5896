package latex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestImageDefaults(t *testing.T) {
	img := NewImage("pic.png", "", "", "")
	if img.Width != "0.8" {
		t.Errorf("Width = %q, want 0.8", img.Width)
	}
	if img.Position != "h" {
		t.Errorf("Position = %q, want h", img.Position)
	}
}

func TestImageLaTeX(t *testing.T) {
	img := NewImage("diagram.png", "A diagram", "0.5", "fig:d")
	got := img.LaTeX()

	checks := []string{
		"\\begin{figure}[h]\n",
		"    \\centering\n",
		"    \\includegraphics[width=0.5\\textwidth]{diagram.png}\n",
		"    \\caption{A diagram}\n",
		"    \\label{fig:d}\n",
		"\\end{figure}\n",
	}
	for _, want := range checks {
		if !strings.Contains(got, want) {
			t.Errorf("LaTeX() missing %q in:\n%s", want, got)
		}
	}
}

func TestImageHeightOption(t *testing.T) {
	img := NewImage("p.png", "", "0.5", "")
	img.Height = "0.3"
	got := img.LaTeX()
	if !strings.Contains(got, "[width=0.5\\textwidth, height=0.3\\textheight]") {
		t.Errorf("LaTeX() = %q, want both dimension options", got)
	}
}

func TestImageProcessResources(t *testing.T) {
	srcDir := t.TempDir()
	outDir := t.TempDir()

	src := filepath.Join(srcDir, "sketch.pdf")
	writeFile(t, src, "%PDF-1.4 not really")

	img := NewImage(src, "", "", "")
	result, err := img.ProcessResources(outDir)
	if err != nil {
		t.Fatalf("ProcessResources() error = %v", err)
	}

	if got := result[src]; got != "images/sketch.pdf" {
		t.Errorf("mapping = %q, want images/sketch.pdf", got)
	}
	if _, err := os.Stat(filepath.Join(outDir, "images", "sketch.pdf")); err != nil {
		t.Errorf("image not copied: %v", err)
	}

	// rendering must refer to the copied location
	if got := img.LaTeX(); !strings.Contains(got, "{images/sketch.pdf}") {
		t.Errorf("LaTeX() = %q, want processed path", got)
	}
}

func TestImageProcessResourcesRepeatable(t *testing.T) {
	srcDir := t.TempDir()
	outDir := t.TempDir()

	src := filepath.Join(srcDir, "pic.png")
	writeFile(t, src, "png bytes")

	img := NewImage(src, "", "", "")
	if _, err := img.ProcessResources(outDir); err != nil {
		t.Fatalf("first ProcessResources() error = %v", err)
	}
	if _, err := img.ProcessResources(outDir); err != nil {
		t.Fatalf("second ProcessResources() error = %v", err)
	}
}

func TestTikZInline(t *testing.T) {
	el := NewTikZ("\\draw (0,0) -- (1,0);\n", true)
	want := "\\begin{tikzpicture}\n\\draw (0,0) -- (1,0);\n\\end{tikzpicture}\n"
	if got := el.LaTeX(); got != want {
		t.Errorf("LaTeX() = %q, want %q", got, want)
	}
}

func TestTikZFigure(t *testing.T) {
	el := NewTikZ("\\draw (0,0) circle (1);", false)
	el.Caption = "A circle"
	el.Label = "fig:circle"
	got := el.LaTeX()

	if !strings.HasPrefix(got, "\\begin{figure}[h]\n") {
		t.Errorf("LaTeX() = %q, want figure wrapper", got)
	}
	if !strings.Contains(got, "    \\caption{A circle}\n    \\label{fig:circle}\n\\end{figure}\n") {
		t.Errorf("LaTeX() = %q, want caption and label inside figure", got)
	}
	if !strings.Contains(got, "\\begin{tikzpicture}\n\\draw (0,0) circle (1);\n\\end{tikzpicture}\n") {
		t.Errorf("LaTeX() = %q, want picture body", got)
	}
}
