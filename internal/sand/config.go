package sand

import (
	"fmt"
	"strconv"

	"sandtable/internal/material"
)

// Config controls world dimensions, the deterministic seed, and optional
// material-table tuning. The material set itself is closed; overrides adjust
// parameters of registered materials only.
type Config struct {
	Width  int
	Height int

	Seed int64

	Materials []material.Override
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 192,
		Seed:   1337,
	}
}

// Validate rejects configurations that cannot construct a world.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("sand: invalid grid dimensions %dx%d", c.Width, c.Height)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["fire_lifetime"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			life := uint8(parsed)
			c.Materials = append(c.Materials, material.Override{Material: "fire", Lifetime: &life})
		}
	}
	if v, ok := cfg["smoke_lifetime"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			life := uint8(parsed)
			c.Materials = append(c.Materials, material.Override{Material: "smoke", Lifetime: &life})
		}
	}
	if v, ok := cfg["acid_quantity"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			life := uint8(parsed)
			c.Materials = append(c.Materials, material.Override{Material: "acid", Lifetime: &life})
		}
	}
	if v, ok := cfg["wood_flammability"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			f := parsed
			c.Materials = append(c.Materials, material.Override{Material: "wood", Flammability: &f})
		}
	}
	return c
}
