package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfig names an explicit config file.
	EnvConfig = "CAPSGAT_CONFIG"

	// FileName is the project-local config file.
	FileName = "capsgat.yml"

	DefaultContextBlocks = 5
	DefaultFormat        = "html"
	DefaultJSONMode      = "one_block"
)

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{}
}

// LoadEnv reads a .env file from the working directory into the process
// environment. Variables already set win. A missing file is not an error.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// SearchPaths lists the candidate config files in priority order.
func SearchPaths(explicit string) []string {
	if explicit != "" {
		return []string{explicit}
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return []string{env}
	}

	paths := []string{FileName}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			configHome = filepath.Join(home, ".config")
		}
	}
	if configHome != "" {
		paths = append(paths, filepath.Join(configHome, "capsgat", "config.yml"))
	}
	return paths
}

// Load finds and parses the config file. It returns the path that was used,
// or "" when running on defaults. An explicitly named file must exist.
func Load(explicit string) (*Config, string, error) {
	required := explicit != "" || os.Getenv(EnvConfig) != ""

	for _, path := range SearchPaths(explicit) {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && !required {
				continue
			}
			return nil, "", fmt.Errorf("failed to read config: %w", err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", path, err)
		}
		return cfg, path, nil
	}
	return Default(), "", nil
}

// Parse decodes and validates YAML config data.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
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
		if errors.As(err, &verrs) {
			return fmt.Errorf("invalid config: %s", strings.Join(formatValidationErrors(verrs), ", "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func formatValidationErrors(errs validator.ValidationErrors) []string {
	var out []string
	for _, err := range errs {
		msg := fmt.Sprintf("field '%s' failed on the '%s' tag", err.Namespace(), err.Tag())
		if err.Param() != "" {
			msg = fmt.Sprintf("%s (value: %s)", msg, err.Param())
		}
		out = append(out, msg)
	}
	return out
}

// ContextSize returns the configured context window or its default.
func (c *Config) ContextSize() int {
	if c.ContextBlocks <= 0 {
		return DefaultContextBlocks
	}
	return c.ContextBlocks
}

// ExportFormat returns the configured export format or its default.
func (c *Config) ExportFormat() string {
	if c.Export.Format == "" {
		return DefaultFormat
	}
	return c.Export.Format
}

// ExportTimestamps reports whether exports include times by default.
func (c *Config) ExportTimestamps() bool {
	return c.Export.IncludeTimestamps == nil || *c.Export.IncludeTimestamps
}

// JSONMode returns the configured JSON import mode or its default.
func (c *Config) JSONMode() string {
	if c.Import.JSONMode == "" {
		return DefaultJSONMode
	}
	return c.Import.JSONMode
}
