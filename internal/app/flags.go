package app

import "flag"

// Config represents the command-line parameters for the GUI application.
type Config struct {
	Width  int
	Height int
	Scale  int
	TPS    int
	Seed   int64
	File   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 256, Height: 192, Scale: 4, TPS: 60, Seed: 1337}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomized tie-breaking")
	fs.StringVar(&c.File, "config", c.File, "optional YAML world file (overrides w/h/seed)")
}
