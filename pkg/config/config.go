// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/roundlogo/pkg/logo"
	"github.com/user/roundlogo/pkg/pipeline"
)

// Config represents a logo configuration file.
type Config struct {
	// Input/Output
	Input  string `yaml:"input"`
	Output string `yaml:"output"`

	// Text
	Text         string `yaml:"text"`
	FontSize     int    `yaml:"font_size"`
	FontPath     string `yaml:"font_path"`
	TextPosition string `yaml:"text_position"`

	// Circle
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	opts := logo.DefaultOptions()
	return Config{
		Text:         opts.Text,
		FontSize:     opts.FontSize,
		FontPath:     opts.FontPath,
		TextPosition: opts.Position.String(),
		Width:        opts.Size.Width,
		Height:       opts.Size.Height,
	}
}

// LoadFromFile loads configuration from a YAML file.
// Keys missing from the file keep their default values.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// ToOptions converts Config to logo.Options.
func (c Config) ToOptions() logo.Options {
	return logo.Options{
		Input:    c.Input,
		Output:   c.Output,
		Text:     c.Text,
		FontSize: c.FontSize,
		Position: pipeline.ParseTextPosition(c.TextPosition),
		Size:     pipeline.Dimension{Width: c.Width, Height: c.Height},
		FontPath: c.FontPath,
	}
}
