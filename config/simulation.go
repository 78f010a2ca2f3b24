package config

import (
	"fmt"

	"github.com/kilianp07/heatplan/core/dispatch"
)

// SimulationConfig holds the economic horizon and the execution switches.
type SimulationConfig struct {
	// DiscountRate is the annual rate, 0.035 for 3.5%.
	DiscountRate float64 `json:"discount_rate"`
	NPCYears     int     `json:"npc_years"`
	// Workers bounds concurrent combinations; 0 uses every CPU, 1 is sequential.
	Workers                int  `json:"workers"`
	UseSurfaceOptimisation bool `json:"use_surface_optimisation"`
	KeepSurfaces           bool `json:"keep_surfaces"`
	// EventBuffer is the per-subscriber buffer of the run event bus.
	EventBuffer int `json:"event_buffer"`
}

// DefaultSimulation returns the standard economic assumptions.
func DefaultSimulation() SimulationConfig {
	return SimulationConfig{
		DiscountRate:           dispatch.DefaultDiscountRate - 1,
		NPCYears:               dispatch.DefaultNPCYears,
		UseSurfaceOptimisation: true,
		EventBuffer:            256,
	}
}

// SetDefaults fills zero numeric fields.
func (c *SimulationConfig) SetDefaults() {
	d := DefaultSimulation()
	if c.NPCYears == 0 {
		c.NPCYears = d.NPCYears
	}
	if c.EventBuffer <= 0 {
		c.EventBuffer = d.EventBuffer
	}
}

// Validate checks the economic parameters.
func (c SimulationConfig) Validate() error {
	switch {
	case c.DiscountRate < 0 || c.DiscountRate >= 1:
		return fmt.Errorf("simulation: discount_rate must be in [0, 1), got %v", c.DiscountRate)
	case c.NPCYears < 1:
		return fmt.Errorf("simulation: npc_years must be positive")
	case c.Workers < 0:
		return fmt.Errorf("simulation: workers must not be negative")
	}
	return nil
}

// DiscountFactor returns the cumulative discount factor over the horizon.
func (c SimulationConfig) DiscountFactor() float64 {
	return dispatch.CumulativeDiscountFactor(1+c.DiscountRate, c.NPCYears)
}
