// Package compile runs the LaTeX engine over a generated source file and
// tidies up the intermediate files it leaves behind.
package compile

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"texgen/config"
)

// tail of engine output kept for error reporting
const outputTailLen = 2000

// Compiler invokes a LaTeX engine. Engines are multi-pass by nature (cross
// references, tables of contents), so Passes is normally at least 2.
type Compiler struct {
	Engine          string
	Passes          int
	InteractionMode string
	ExtraOptions    []string
	Timeout         time.Duration

	log *zap.Logger
}

// NewCompiler builds a compiler from configuration.
func NewCompiler(cfg *config.CompilationConfig, log *zap.Logger) *Compiler {
	return &Compiler{
		Engine:          cfg.Engine,
		Passes:          cfg.Passes,
		InteractionMode: cfg.InteractionMode,
		ExtraOptions:    cfg.ExtraOptions,
		Timeout:         time.Duration(cfg.TimeoutSec) * time.Second,
		log:             log,
	}
}

// CheckDependencies verifies that the configured engine is present in PATH
// and returns its resolved location.
func (c *Compiler) CheckDependencies() (string, error) {
	path, err := exec.LookPath(c.Engine)
	if err != nil {
		return "", fmt.Errorf("LaTeX engine %q is not available: %w", c.Engine, err)
	}
	return path, nil
}

// Compile runs the engine over texPath the configured number of passes and
// returns the path of the produced PDF. The engine runs in the directory of
// the source file so auxiliary files stay together.
func (c *Compiler) Compile(ctx context.Context, texPath string) (string, error) {
	enginePath, err := c.CheckDependencies()
	if err != nil {
		return "", err
	}

	workDir := filepath.Dir(texPath)
	base := filepath.Base(texPath)

	args := make([]string, 0, len(c.ExtraOptions)+2)
	if c.InteractionMode != "" {
		args = append(args, "-interaction="+c.InteractionMode)
	}
	args = append(args, c.ExtraOptions...)
	args = append(args, base)

	for pass := 1; pass <= c.Passes; pass++ {
		c.log.Debug("Running LaTeX engine",
			zap.String("engine", c.Engine),
			zap.Int("pass", pass),
			zap.Int("passes", c.Passes),
			zap.String("file", base))

		if err := c.runPass(ctx, enginePath, args, workDir); err != nil {
			return "", fmt.Errorf("%s pass %d of %d: %w", c.Engine, pass, c.Passes, err)
		}
	}

	pdfPath := strings.TrimSuffix(texPath, filepath.Ext(texPath)) + ".pdf"
	if _, err := os.Stat(pdfPath); err != nil {
		return "", fmt.Errorf("engine finished but PDF was not produced: %w", err)
	}
	return pdfPath, nil
}

func (c *Compiler) runPass(ctx context.Context, enginePath string, args []string, workDir string) error {
	passCtx := ctx
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		passCtx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	var out bytes.Buffer
	cmd := exec.CommandContext(passCtx, enginePath, args...)
	cmd.Dir = workDir
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		if passCtx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("engine timed out after %s", c.Timeout)
		}
		return fmt.Errorf("engine failed: %w\n%s", err, outputTail(out.String()))
	}
	return nil
}

// outputTail returns the last portion of the engine output - LaTeX reports
// errors at the end of a very chatty log.
func outputTail(s string) string {
	if len(s) <= outputTailLen {
		return s
	}
	return "..." + s[len(s)-outputTailLen:]
}

// Cleanup removes intermediate files next to texPath according to the file
// management settings. Removal errors are collected, not fatal.
func Cleanup(texPath string, fm *config.FileManagementConfig, log *zap.Logger) error {
	if !fm.Cleanup {
		return nil
	}

	stem := strings.TrimSuffix(texPath, filepath.Ext(texPath))

	var errs error
	for _, ext := range fm.CleanupExtensions {
		if fm.KeepLog && ext == ".log" {
			continue
		}
		target := stem + ext
		if _, err := os.Stat(target); err != nil {
			continue
		}
		log.Debug("Removing intermediate file", zap.String("file", target))
		if err := os.Remove(target); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("unable to remove %s: %w", target, err))
		}
	}

	if !fm.KeepTex {
		if err := os.Remove(texPath); err != nil && !os.IsNotExist(err) {
			errs = multierr.Append(errs, fmt.Errorf("unable to remove %s: %w", texPath, err))
		}
	}
	return errs
}
