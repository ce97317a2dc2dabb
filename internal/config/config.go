// Package config loads world configuration from YAML files for the headless
// tools. Omitted fields keep the simulation defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"sandtable/internal/material"
	"sandtable/internal/sand"
)

// File is the YAML world description.
type File struct {
	// Width and Height are the grid dimensions in cells.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Seed drives all randomized tie-breaking; a fixed seed makes runs
	// reproducible.
	Seed int64 `yaml:"seed"`

	// Materials tunes parameters of registered materials. The material
	// set itself is fixed.
	Materials []MaterialTuning `yaml:"materials"`
}

// MaterialTuning adjusts one material. Nil fields keep the built-in value.
type MaterialTuning struct {
	Material     string   `yaml:"material"`
	Density      *int     `yaml:"density,omitempty"`
	Flammability *float64 `yaml:"flammability,omitempty"`
	Lifetime     *uint8   `yaml:"lifetime,omitempty"`
	Color        *string  `yaml:"color,omitempty"`
}

// Load reads and parses a YAML world file.
func Load(path string) (sand.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sand.Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return sand.Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into a simulation config, applying defaults for omitted
// fields and validating the result.
func Parse(data []byte) (sand.Config, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return sand.Config{}, err
	}

	cfg := sand.DefaultConfig()
	if f.Width != 0 {
		cfg.Width = f.Width
	}
	if f.Height != 0 {
		cfg.Height = f.Height
	}
	if f.Seed != 0 {
		cfg.Seed = f.Seed
	}
	for _, m := range f.Materials {
		cfg.Materials = append(cfg.Materials, material.Override{
			Material:     m.Material,
			Density:      m.Density,
			Flammability: m.Flammability,
			Lifetime:     m.Lifetime,
			Color:        m.Color,
		})
	}

	if err := cfg.Validate(); err != nil {
		return sand.Config{}, err
	}
	// Surface override mistakes at load time rather than at world
	// construction.
	if _, err := material.New(cfg.Materials...); err != nil {
		return sand.Config{}, err
	}
	return cfg, nil
}
