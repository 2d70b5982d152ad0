// Package config handles configuration loading and output defaults.
package config

import (
	"fmt"
	"os"

	"github.com/woozymasta/terraformer/internal/geo"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config represents the root configuration file structure.
type Config struct {
	Format      string `yaml:"format,omitempty" json:"format,omitempty"`
	Indent      string `yaml:"indent,omitempty" json:"indent,omitempty"`
	Minify      bool   `yaml:"minify,omitempty" json:"minify,omitempty"`
	CircleSteps int    `yaml:"circle_steps,omitempty" json:"circle_steps,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.Normalize()

	return cfg
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &cfg, nil
}

// Normalize fills unset fields with defaults.
func (c *Config) Normalize() {
	if c.Format == "" {
		c.Format = FormatJSON
	}
	if c.Indent == "" {
		c.Indent = "  "
	}
	if c.CircleSteps == 0 {
		c.CircleSteps = geo.DefaultCircleSteps
	}
}

// Validate checks the values that have a restricted range.
func (c *Config) Validate() error {
	if c.Format != FormatJSON && c.Format != FormatYAML {
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.CircleSteps < 3 {
		return fmt.Errorf("circle_steps must be >= 3, got %d", c.CircleSteps)
	}

	return nil
}
