// Package config provides configuration loading for the CLI and server.
// The Gemini credential is read from the environment exactly once, at
// process start, and handed to component constructors; components never
// consult the environment themselves.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultDataDir is where extracted records are stored unless overridden
const DefaultDataDir = "resumes_data"

// Config represents the application configuration. Values can come from a
// JSON file, from the environment, or from CLI flags; missing values use
// defaults.
type Config struct {
	// APIKey is the Gemini API key (env: GEMINI_API_KEY)
	APIKey string `json:"api_key,omitempty"`
	// DataDir is the directory holding one JSON file per extracted resume
	// (env: RESUME_DATA_DIR)
	DataDir string `json:"data_dir,omitempty"`
	// Port is the HTTP server port (env: PORT)
	Port int `json:"port,omitempty"`
	// Verbose enables detailed progress output
	Verbose bool `json:"verbose,omitempty"`
}

// FromEnv builds a Config from process environment variables
func FromEnv() Config {
	cfg := Config{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		DataDir: os.Getenv("RESUME_DATA_DIR"),
	}
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Port = p
		}
	}
	return cfg
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.DataDir == "" {
		result.DataDir = DefaultDataDir
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	// A bool flag cannot distinguish unset from false, so verbose merges
	// by OR; either source can enable it
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// Validate checks that the configuration has usable values
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	return nil
}
