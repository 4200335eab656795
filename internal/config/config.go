// Package config loads the optional nodelens configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds editor defaults. Every field has a working default; the file
// itself is optional.
type Config struct {
	// Indent is the indentation width used when rewriting documents.
	Indent int `yaml:"indent" validate:"min=1,max=8"`
	// StrictPaths makes an unresolvable node path an error instead of
	// silently editing the document root.
	StrictPaths bool `yaml:"strictPaths"`
	// NoColor disables colored terminal output.
	NoColor bool `yaml:"noColor"`
	// LogFile enables logging to the given file.
	LogFile string `yaml:"logFile"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Indent: 2}
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".config", "nodelens", "config.yaml")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
