// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume string `json:"resume,omitempty"` // Path to a resume JSON file
	Dir    string `json:"dir,omitempty"`    // Directory of resume JSON files for batch checking
	Output string `json:"output,omitempty"` // Path to write the report to (default stdout)

	// Behavior
	Format  string `json:"format,omitempty"`  // Output format: "json" or "text"
	Verbose bool   `json:"verbose,omitempty"` // Print detailed category diagnostics
	Port    int    `json:"port,omitempty"`    // HTTP server port for the serve command
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Resume != "" && c.Dir != "" {
		return fmt.Errorf("config error: 'resume' and 'dir' are mutually exclusive")
	}

	if c.Format != "" && c.Format != "json" && c.Format != "text" {
		return fmt.Errorf("config error: 'format' must be \"json\" or \"text\"")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	if c.Dir != "" {
		if _, err := os.Stat(c.Dir); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume directory not found: %s", c.Dir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Dir == "" {
		result.Dir = defaults.Dir
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: config file can switch verbose on but not off
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
