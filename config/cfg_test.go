package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Compilation.Engine != "pdflatex" {
		t.Errorf("Engine = %q, want pdflatex", cfg.Compilation.Engine)
	}
	if cfg.Compilation.Passes != 2 {
		t.Errorf("Passes = %d, want 2", cfg.Compilation.Passes)
	}
	if !cfg.FileManagement.Cleanup {
		t.Error("Expected Cleanup to be true by default")
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
compilation:
  engine: xelatex
  passes: 3
  timeout_sec: 120
directories:
  output_dir: /tmp/out
file_management:
  keep_tex: true
logging:
  console:
    level: debug
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Compilation.Engine != "xelatex" {
		t.Errorf("Engine = %q, want xelatex", cfg.Compilation.Engine)
	}
	if cfg.Compilation.Passes != 3 {
		t.Errorf("Passes = %d, want 3", cfg.Compilation.Passes)
	}
	if cfg.Compilation.TimeoutSec != 120 {
		t.Errorf("TimeoutSec = %d, want 120", cfg.Compilation.TimeoutSec)
	}
	if cfg.Directories.OutputDir != "/tmp/out" {
		t.Errorf("OutputDir = %q, want /tmp/out", cfg.Directories.OutputDir)
	}
	if !cfg.FileManagement.KeepTex {
		t.Error("Expected KeepTex to be true")
	}

	// untouched values keep their defaults
	if cfg.Compilation.InteractionMode != "nonstopmode" {
		t.Errorf("InteractionMode = %q, want default nonstopmode", cfg.Compilation.InteractionMode)
	}
	if cfg.Directories.FontsDir != "fonts" {
		t.Errorf("FontsDir = %q, want default fonts", cfg.Directories.FontsDir)
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	_, err := LoadConfiguration("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_UnknownFields(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "unknown.yaml")

	configContent := `version: 1
compilation:
  engine: pdflatex
  no_such_option: true
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadConfiguration(configPath); err == nil {
		t.Error("Expected error for unknown fields")
	}
}

func TestLoadConfiguration_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"bad version",
			"version: 2\n",
			"unsupported configuration version",
		},
		{
			"unknown engine",
			"version: 1\ncompilation:\n  engine: wordpad\n",
			"unknown LaTeX engine",
		},
		{
			"zero passes",
			"version: 1\ncompilation:\n  passes: 0\n",
			"passes must be at least 1",
		},
		{
			"bad log level",
			"version: 1\nlogging:\n  console:\n    level: chatty\n",
			"unknown console log level",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write config file: %v", err)
			}
			_, err := LoadConfiguration(configPath)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestDumpRoundTrip(t *testing.T) {
	data, err := Dump(Default())
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	configPath := filepath.Join(t.TempDir(), "dumped.yaml")
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() of dumped config error = %v", err)
	}
	if cfg.Compilation.Engine != Default().Compilation.Engine {
		t.Errorf("Engine = %q, want %q", cfg.Compilation.Engine, Default().Compilation.Engine)
	}
}

func TestLoggingPrepare(t *testing.T) {
	for _, level := range []string{"none", "normal", "debug"} {
		conf := &LoggingConfig{Console: LoggerConfig{Level: level}}
		log, err := conf.Prepare()
		if err != nil {
			t.Fatalf("Prepare() level %q error = %v", level, err)
		}
		if log == nil {
			t.Fatalf("Prepare() level %q returned nil logger", level)
		}
		log.Info("probe")
	}
}
