package config

import "fmt"

// OutputConfig selects where and how reports are written.
type OutputConfig struct {
	// Format is json or csv.
	Format string `json:"format"`
	// Path is the report file; empty or "-" writes to stdout.
	Path string `json:"path"`
	// SurfacesDir receives one CSV per combination surface when set.
	SurfacesDir string `json:"surfaces_dir"`
}

// SetDefaults applies sane defaults.
func (c *OutputConfig) SetDefaults() {
	if c.Format == "" {
		c.Format = "json"
	}
}

// Validate checks the format name.
func (c OutputConfig) Validate() error {
	if c.Format != "json" && c.Format != "csv" {
		return fmt.Errorf("output: unknown format %q", c.Format)
	}
	return nil
}
