// Package config provides configuration loading and validation for the CLI.
// Settings come from a JSON file in the data directory, overridden by
// environment variables.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Env var names recognized as overrides.
const (
	EnvAPIKey       = "GEMINI_API_KEY"
	EnvDataDir      = "RESUMINT_DATA_DIR"
	EnvLatexCommand = "RESUMINT_LATEX_CMD"
	EnvVerbose      = "RESUMINT_VERBOSE"
)

// FileName is the config file name inside the data directory.
const FileName = "config.json"

// Config holds the CLI settings.
type Config struct {
	// APIKey authenticates against the Gemini API. Required for any
	// command that analyzes or rewrites.
	APIKey string `json:"api_key,omitempty"`

	// DataDir is the record store root. Defaults to ~/.resumint.
	DataDir string `json:"data_dir,omitempty"`

	// LatexCommand is the LaTeX compiler binary.
	LatexCommand string `json:"latex_command,omitempty" validate:"omitempty,oneof=pdflatex xelatex lualatex"`

	// UseBrowser enables the headless fallback for JavaScript-rendered
	// postings.
	UseBrowser bool `json:"use_browser"`

	// Verbose prints full analyses and debug detail.
	Verbose bool `json:"verbose"`
}

var validate = validator.New()

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LatexCommand: "pdflatex",
		UseBrowser:   true,
	}
}

// Load reads the config file under dataDir if present, applies env
// overrides, and validates the result. A missing file yields defaults.
func Load(dataDir string) (*Config, error) {
	cfg := Default()
	cfg.DataDir = dataDir

	path := filepath.Join(dataDir, FileName)
	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	applyEnv(cfg)
	if cfg.LatexCommand == "" {
		cfg.LatexCommand = "pdflatex"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Save writes the config file into its data directory.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	path := filepath.Join(c.DataDir, FileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}

// RequireAPIKey returns the API key or an actionable error.
func (c *Config) RequireAPIKey() (string, error) {
	if c.APIKey == "" {
		return "", fmt.Errorf("no API key configured: set %s or api_key in %s", EnvAPIKey, FileName)
	}
	return c.APIKey, nil
}

// applyEnv overlays environment variables onto the config.
func applyEnv(cfg *Config) {
	if key := os.Getenv(EnvAPIKey); key != "" {
		cfg.APIKey = key
	}
	if dir := os.Getenv(EnvDataDir); dir != "" {
		cfg.DataDir = dir
	}
	if cmd := os.Getenv(EnvLatexCommand); cmd != "" {
		cfg.LatexCommand = cmd
	}
	if v := os.Getenv(EnvVerbose); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = parsed
		}
	}
}
