// Package config provides configuration loading and management for seiscube.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration loaded from YAML.
type Config struct {
	// Server parameters for remote mode
	Server struct {
		// BaseURL is the backend API address
		BaseURL string `yaml:"baseURL"`

		// TimeoutSeconds bounds each fetch request
		TimeoutSeconds int `yaml:"timeoutSeconds"`
	} `yaml:"server"`

	// Viewer parameters
	Viewer struct {
		// ColorScheme is the initial amplitude color scheme
		ColorScheme string `yaml:"colorScheme"`

		// CustomColors is the ordered color list used when ColorScheme
		// is "custom"
		CustomColors []string `yaml:"customColors"`

		// ShowInline, ShowXline and ShowSample are the initial slice
		// visibility toggles
		ShowInline bool `yaml:"showInline"`
		ShowXline  bool `yaml:"showXline"`
		ShowSample bool `yaml:"showSample"`

		// OutputHTML is where the rendered scene document is written
		OutputHTML string `yaml:"outputHTML"`

		// DisplayModeBar shows the render surface's interactive toolbar
		DisplayModeBar bool `yaml:"displayModeBar"`

		// Responsive resizes the rendered scene with its container
		Responsive bool `yaml:"responsive"`
	} `yaml:"viewer"`

	// Demo parameters for the synthetic offline cube
	Demo struct {
		// Inlines, Xlines and Samples are the synthetic cube dimensions
		Inlines int `yaml:"inlines"`
		Xlines  int `yaml:"xlines"`
		Samples int `yaml:"samples"`
	} `yaml:"demo"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	// Set default server parameters
	cfg.Server.BaseURL = "http://localhost:5000"
	cfg.Server.TimeoutSeconds = 30

	// Set default viewer parameters
	cfg.Viewer.ColorScheme = "seismic"
	cfg.Viewer.ShowInline = true
	cfg.Viewer.ShowXline = true
	cfg.Viewer.ShowSample = true
	cfg.Viewer.OutputHTML = "viewer.html"
	cfg.Viewer.DisplayModeBar = true
	cfg.Viewer.Responsive = true

	// Set default demo cube dimensions
	cfg.Demo.Inlines = 50
	cfg.Demo.Xlines = 60
	cfg.Demo.Samples = 100

	return cfg
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist, it returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file.
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
