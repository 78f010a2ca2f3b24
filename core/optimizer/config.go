package optimizer

import "fmt"

// Config tunes the quadtree search.
type Config struct {
	// Enabled selects the quadtree search; when false every grid is scanned.
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	// TargetSegments is the minimum number of initial segments per axis.
	TargetSegments int `json:"target_segments" yaml:"target_segments" mapstructure:"target_segments"`
	// TargetStep is the preferred initial segment length on long axes.
	TargetStep int `json:"target_step" yaml:"target_step" mapstructure:"target_step"`
	// Damping scales the estimated slopes on large grids. Smaller prunes less.
	Damping float64 `json:"damping" yaml:"damping" mapstructure:"damping"`
	// LooseDamping replaces Damping on grids of at most LooseBelowCells points.
	LooseDamping    float64 `json:"loose_damping" yaml:"loose_damping" mapstructure:"loose_damping"`
	LooseBelowCells int     `json:"loose_below_cells" yaml:"loose_below_cells" mapstructure:"loose_below_cells"`
	// Grids with an axis shorter than MinAxisSteps or at most ExhaustiveCells
	// points are scanned exhaustively.
	MinAxisSteps    int `json:"min_axis_steps" yaml:"min_axis_steps" mapstructure:"min_axis_steps"`
	ExhaustiveCells int `json:"exhaustive_cells" yaml:"exhaustive_cells" mapstructure:"exhaustive_cells"`
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		Enabled:         true,
		TargetSegments:  3,
		TargetStep:      100,
		Damping:         0.12,
		LooseDamping:    0.38,
		LooseBelowCells: 200,
		MinAxisSteps:    4,
		ExhaustiveCells: 55,
	}
}

// SetDefaults fills zero numeric fields. Enabled is left as decoded.
func (c *Config) SetDefaults() {
	d := DefaultConfig()
	if c.TargetSegments == 0 {
		c.TargetSegments = d.TargetSegments
	}
	if c.TargetStep == 0 {
		c.TargetStep = d.TargetStep
	}
	if c.Damping == 0 {
		c.Damping = d.Damping
	}
	if c.LooseDamping == 0 {
		c.LooseDamping = d.LooseDamping
	}
	if c.LooseBelowCells == 0 {
		c.LooseBelowCells = d.LooseBelowCells
	}
	if c.MinAxisSteps == 0 {
		c.MinAxisSteps = d.MinAxisSteps
	}
	if c.ExhaustiveCells == 0 {
		c.ExhaustiveCells = d.ExhaustiveCells
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.TargetSegments < 1 {
		return fmt.Errorf("target_segments must be at least 1")
	}
	if c.TargetStep < 1 {
		return fmt.Errorf("target_step must be at least 1")
	}
	if c.Damping <= 0 || c.LooseDamping <= 0 {
		return fmt.Errorf("damping factors must be positive")
	}
	if c.MinAxisSteps < 2 {
		return fmt.Errorf("min_axis_steps must be at least 2")
	}
	return nil
}

func (c Config) damping(cells int) float64 {
	if cells > c.LooseBelowCells {
		return c.Damping
	}
	return c.LooseDamping
}

// UseQuadtree reports whether a grid is large enough for the quadtree search.
func (c Config) UseQuadtree(xSize, ySize int) bool {
	return c.Enabled &&
		xSize >= c.MinAxisSteps && ySize >= c.MinAxisSteps &&
		xSize*ySize > c.ExhaustiveCells
}
