// Package config loads smartsave settings from YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"smartsave/pkg/sanitizer"
)

// Config holds the naming defaults of a project.
type Config struct {
	// ScenesDir is the scenes folder, relative to the project root unless absolute.
	ScenesDir string `yaml:"scenes_dir"`
	// Descriptor is the default descriptor for new scenes.
	Descriptor string `yaml:"descriptor"`
	// Task is the default task for new scenes.
	Task string `yaml:"task"`
	// Extension is the default scene file extension, including the dot.
	Extension string `yaml:"extension"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		ScenesDir:  "Scenes",
		Descriptor: "main",
		Task:       "model",
		Extension:  ".ma",
	}
}

// Validate checks that the configured defaults produce valid scene names.
func (c *Config) Validate() error {
	if c.ScenesDir == "" {
		return fmt.Errorf("scenes_dir is required")
	}
	if err := sanitizer.ValidateField(c.Descriptor); err != nil {
		return fmt.Errorf("descriptor %q: %w", c.Descriptor, err)
	}
	if err := sanitizer.ValidateField(c.Task); err != nil {
		return fmt.Errorf("task %q: %w", c.Task, err)
	}
	if err := sanitizer.ValidateExtension(c.Extension); err != nil {
		return fmt.Errorf("extension %q: %w", c.Extension, err)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	config.Extension = sanitizer.NormalizeExtension(config.Extension)

	return config, nil
}

// SaveToFile writes the configuration as YAML, creating parent directories.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values).
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.ScenesDir != "" {
		c.ScenesDir = other.ScenesDir
	}
	if other.Descriptor != "" {
		c.Descriptor = other.Descriptor
	}
	if other.Task != "" {
		c.Task = other.Task
	}
	if other.Extension != "" {
		c.Extension = other.Extension
	}
}
