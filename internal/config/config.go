// Package config provides configuration loading for pdf-text.
// Supports a YAML file, a .env file, environment variables, and flag overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spherical/pdf-text/internal/domain"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for pdf-text.
type Config struct {
	PDF    PDFConfig    `yaml:"pdf"`
	Dialog DialogConfig `yaml:"dialog"`
	Log    LogConfig    `yaml:"log"`
	UI     UIConfig     `yaml:"ui"`
}

// PDFConfig selects the extraction backend and validation depth.
type PDFConfig struct {
	Backend    string `yaml:"backend" validate:"oneof=fitz ledongthuc"`
	Strict     bool   `yaml:"strict"`                        // run pdfcpu structural validation first
	WarnSizeMB int64  `yaml:"warn_size_mb" validate:"gte=1"` // log a warning above this size
}

// DialogConfig holds file dialog settings.
type DialogConfig struct {
	Title    string `yaml:"title" validate:"required"`
	StartDir string `yaml:"start_dir"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `yaml:"format" validate:"oneof=json console"`
}

// UIConfig holds console presentation settings.
type UIConfig struct {
	Progress *bool `yaml:"progress"` // nil means "when stderr is a terminal"
	NoColor  bool  `yaml:"no_color"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		PDF: PDFConfig{
			Backend:    "fitz",
			WarnSizeMB: 100,
		},
		Dialog: DialogConfig{
			Title: "Select a PDF file",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load builds the configuration from defaults, the optional YAML file at path,
// a .env file in the working directory, and PDFTEXT_* environment variables.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, domain.ConfigError("read config file", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, domain.ConfigError("parse config file", err)
		}
	}

	// A missing .env file is not an error
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, domain.ConfigError("load .env file", err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return domain.ConfigError(fmt.Sprintf("invalid value %v for %s", fe.Value(), fe.Namespace()), err)
		}
		return domain.ConfigError("validate config", err)
	}
	return nil
}

// ShowProgress reports whether the page progress bar should be drawn.
func (c *Config) ShowProgress(stderrIsTerminal bool) bool {
	if c.UI.Progress != nil {
		return *c.UI.Progress
	}
	return stderrIsTerminal
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("PDFTEXT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}

	if v := os.Getenv("PDFTEXT_LOG_FORMAT"); v != "" {
		cfg.Log.Format = strings.ToLower(v)
	}

	if v := os.Getenv("PDFTEXT_BACKEND"); v != "" {
		cfg.PDF.Backend = strings.ToLower(v)
	}

	if v := os.Getenv("PDFTEXT_STRICT"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return domain.ConfigError("PDFTEXT_STRICT must be a boolean", err)
		}
		cfg.PDF.Strict = strict
	}

	if v := os.Getenv("PDFTEXT_DIALOG_TITLE"); v != "" {
		cfg.Dialog.Title = v
	}

	if v := os.Getenv("PDFTEXT_START_DIR"); v != "" {
		cfg.Dialog.StartDir = v
	}

	if v := os.Getenv("PDFTEXT_PROGRESS"); v != "" {
		progress, err := strconv.ParseBool(v)
		if err != nil {
			return domain.ConfigError("PDFTEXT_PROGRESS must be a boolean", err)
		}
		cfg.UI.Progress = &progress
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.UI.NoColor = true
	}

	return nil
}
