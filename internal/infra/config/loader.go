// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/workasana/workasana/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "config.toml"

// EnvBaseURL overrides the configured backend address when set.
const EnvBaseURL = "WORKASANA_API_URL"

// fileConfig mirrors the TOML layout.
type fileConfig struct {
	API struct {
		BaseURL string `toml:"base_url"`
	} `toml:"api"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

// Loader loads configuration from a TOML file in the config directory.
type Loader struct {
	confDir string
}

// NewLoader creates a Loader for the given config directory.
func NewLoader(confDir string) *Loader {
	return &Loader{confDir: confDir}
}

// Load returns the configuration: defaults, then the file, then environment
// overrides, later sources taking precedence.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	file, err := l.loadFile(filepath.Join(l.confDir, ConfigFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if file != nil {
		if file.API.BaseURL != "" {
			cfg.API.BaseURL = file.API.BaseURL
		}
		if file.Log.Level != "" {
			cfg.Log.Level = file.Log.Level
		}
	}

	if url := os.Getenv(EnvBaseURL); url != "" {
		cfg.API.BaseURL = url
	}

	return cfg, nil
}

// loadFile loads a single TOML config file.
func (l *Loader) loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg fileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}
