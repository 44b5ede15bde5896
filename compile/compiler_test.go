package compile

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"go.uber.org/zap"

	"texgen/config"
)

// fakeEngine writes an executable script that mimics a LaTeX engine: it
// produces a PDF next to its input and exits with the given code.
func fakeEngine(t *testing.T, exitCode int) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script based fake engine")
	}

	script := `#!/bin/sh
for arg; do last="$arg"; done
base="${last%.tex}"
echo "This is a fake engine, processing $last"
touch "$base.pdf" "$base.aux" "$base.log"
exit ` + strconv.Itoa(exitCode) + "\n"

	path := filepath.Join(t.TempDir(), "fakelatex")
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("Failed to write fake engine: %v", err)
	}
	return path
}

func testCompiler(engine string) *Compiler {
	return NewCompiler(&config.CompilationConfig{
		Engine:          engine,
		Passes:          2,
		InteractionMode: "nonstopmode",
		TimeoutSec:      30,
	}, zap.NewNop())
}

func TestCheckDependenciesMissingEngine(t *testing.T) {
	c := testCompiler("definitely-not-a-latex-engine")
	if _, err := c.CheckDependencies(); err == nil {
		t.Error("Expected error for missing engine")
	}
}

func TestCompileProducesPDF(t *testing.T) {
	engine := fakeEngine(t, 0)
	workDir := t.TempDir()

	texPath := filepath.Join(workDir, "doc.tex")
	if err := os.WriteFile(texPath, []byte("\\documentclass{article}"), 0644); err != nil {
		t.Fatalf("Failed to write tex file: %v", err)
	}

	pdfPath, err := testCompiler(engine).Compile(context.Background(), texPath)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if pdfPath != filepath.Join(workDir, "doc.pdf") {
		t.Errorf("Compile() = %q, want doc.pdf next to source", pdfPath)
	}
	if _, err := os.Stat(pdfPath); err != nil {
		t.Errorf("PDF not produced: %v", err)
	}
}

func TestCompileEngineFailure(t *testing.T) {
	engine := fakeEngine(t, 1)
	workDir := t.TempDir()

	texPath := filepath.Join(workDir, "doc.tex")
	if err := os.WriteFile(texPath, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write tex file: %v", err)
	}

	_, err := testCompiler(engine).Compile(context.Background(), texPath)
	if err == nil {
		t.Fatal("Compile() expected error from failing engine")
	}
	if !strings.Contains(err.Error(), "pass 1 of 2") {
		t.Errorf("error = %v, want failing pass identified", err)
	}
	// engine output is part of the report
	if !strings.Contains(err.Error(), "fake engine") {
		t.Errorf("error = %v, want engine output tail", err)
	}
}

func TestOutputTail(t *testing.T) {
	short := "all good"
	if got := outputTail(short); got != short {
		t.Errorf("outputTail(short) = %q, want unchanged", got)
	}

	long := strings.Repeat("x", outputTailLen+100) + "END"
	got := outputTail(long)
	if !strings.HasPrefix(got, "...") {
		t.Errorf("outputTail(long) = %q..., want ellipsis prefix", got[:10])
	}
	if !strings.HasSuffix(got, "END") {
		t.Error("outputTail(long) lost the end of the output")
	}
	if len(got) != outputTailLen+3 {
		t.Errorf("outputTail(long) length = %d, want %d", len(got), outputTailLen+3)
	}
}

func TestCleanup(t *testing.T) {
	workDir := t.TempDir()
	texPath := filepath.Join(workDir, "doc.tex")

	for _, name := range []string{"doc.tex", "doc.aux", "doc.log", "doc.out", "doc.pdf"} {
		if err := os.WriteFile(filepath.Join(workDir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	fm := &config.FileManagementConfig{
		Cleanup:           true,
		KeepLog:           true,
		CleanupExtensions: []string{".aux", ".log", ".out"},
	}
	if err := Cleanup(texPath, fm, zap.NewNop()); err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}

	for _, gone := range []string{"doc.aux", "doc.out", "doc.tex"} {
		if _, err := os.Stat(filepath.Join(workDir, gone)); !os.IsNotExist(err) {
			t.Errorf("%s still present after cleanup", gone)
		}
	}
	for _, kept := range []string{"doc.log", "doc.pdf"} {
		if _, err := os.Stat(filepath.Join(workDir, kept)); err != nil {
			t.Errorf("%s removed by cleanup: %v", kept, err)
		}
	}
}

func TestCleanupDisabled(t *testing.T) {
	workDir := t.TempDir()
	texPath := filepath.Join(workDir, "doc.tex")
	if err := os.WriteFile(texPath, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write tex file: %v", err)
	}

	fm := &config.FileManagementConfig{Cleanup: false, CleanupExtensions: []string{".tex"}}
	if err := Cleanup(texPath, fm, zap.NewNop()); err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}
	if _, err := os.Stat(texPath); err != nil {
		t.Error("Cleanup() removed files while disabled")
	}
}

func TestCleanupKeepTex(t *testing.T) {
	workDir := t.TempDir()
	texPath := filepath.Join(workDir, "doc.tex")
	if err := os.WriteFile(texPath, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write tex file: %v", err)
	}

	fm := &config.FileManagementConfig{Cleanup: true, KeepTex: true}
	if err := Cleanup(texPath, fm, zap.NewNop()); err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}
	if _, err := os.Stat(texPath); err != nil {
		t.Error("Cleanup() removed the source despite keep_tex")
	}
}
