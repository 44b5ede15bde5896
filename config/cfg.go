// Package config loads and validates texgen configuration and prepares the
// program logger.
package config

import (
	"bytes"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

type (
	// CompilationConfig controls how the LaTeX engine is invoked.
	CompilationConfig struct {
		Engine          string   `yaml:"engine"`
		Passes          int      `yaml:"passes"`
		InteractionMode string   `yaml:"interaction_mode"`
		ExtraOptions    []string `yaml:"extra_options"`
		TimeoutSec      int      `yaml:"timeout_sec"`
	}

	// DirectoriesConfig names the output, temporary and font directories.
	DirectoriesConfig struct {
		OutputDir string `yaml:"output_dir"`
		TempDir   string `yaml:"temp_dir"`
		FontsDir  string `yaml:"fonts_dir"`
	}

	// FileManagementConfig controls intermediate-file cleanup after a
	// successful compile.
	FileManagementConfig struct {
		Cleanup           bool     `yaml:"cleanup"`
		KeepTex           bool     `yaml:"keep_tex"`
		KeepLog           bool     `yaml:"keep_log"`
		CleanupExtensions []string `yaml:"cleanup_extensions"`
	}

	Config struct {
		Version        int                  `yaml:"version"`
		Compilation    CompilationConfig    `yaml:"compilation"`
		Directories    DirectoriesConfig    `yaml:"directories"`
		FileManagement FileManagementConfig `yaml:"file_management"`
		Logging        LoggingConfig        `yaml:"logging"`
	}
)

var knownEngines = map[string]bool{
	"pdflatex": true,
	"platex":   true,
	"uplatex":  true,
	"xelatex":  true,
	"lualatex": true,
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: 1,
		Compilation: CompilationConfig{
			Engine:          "pdflatex",
			Passes:          2,
			InteractionMode: "nonstopmode",
			TimeoutSec:      60,
		},
		Directories: DirectoriesConfig{
			OutputDir: "output",
			FontsDir:  "fonts",
		},
		FileManagement: FileManagementConfig{
			Cleanup:           true,
			CleanupExtensions: []string{".aux", ".log", ".out", ".synctex.gz"},
		},
		Logging: LoggingConfig{
			Console: LoggerConfig{Level: "normal"},
		},
	}
}

// LoadConfiguration reads the configuration file at path, superimposing its
// values on the defaults. An empty path returns the defaults. Unknown fields
// are rejected.
func LoadConfiguration(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read configuration file: %w", err)
	}

	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported configuration version %d", cfg.Version)
	}
	if !knownEngines[cfg.Compilation.Engine] {
		return fmt.Errorf("unknown LaTeX engine %q", cfg.Compilation.Engine)
	}
	if cfg.Compilation.Passes < 1 {
		return fmt.Errorf("compilation passes must be at least 1, got %d", cfg.Compilation.Passes)
	}
	if cfg.Compilation.TimeoutSec <= 0 {
		return fmt.Errorf("compilation timeout must be positive, got %d", cfg.Compilation.TimeoutSec)
	}
	switch cfg.Logging.Console.Level {
	case "none", "normal", "debug":
	default:
		return fmt.Errorf("unknown console log level %q", cfg.Logging.Console.Level)
	}
	return nil
}

// Dump serializes the effective configuration back to YAML.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to serialize configuration: %w", err)
	}
	return data, nil
}
