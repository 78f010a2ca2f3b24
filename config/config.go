// Package config loads the application configuration from a YAML or JSON file
// with HEATPLAN_ environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/heatplan/core/building"
	"github.com/kilianp07/heatplan/core/diagnostics"
	"github.com/kilianp07/heatplan/core/metrics"
	"github.com/kilianp07/heatplan/core/optimizer"
	"github.com/kilianp07/heatplan/infra/weather"
)

// EnvPrefix marks environment overrides. HEATPLAN_SIMULATION__WORKERS=4 sets
// simulation.workers.
const EnvPrefix = "HEATPLAN_"

type Config struct {
	House       building.HouseSpec `json:"house"`
	Weather     weather.Config     `json:"weather"`
	Simulation  SimulationConfig   `json:"simulation"`
	Optimizer   optimizer.Config   `json:"optimizer"`
	Diagnostics diagnostics.Config `json:"diagnostics"`
	Metrics     metrics.Config     `json:"metrics"`
	Logging     LoggingConfig      `json:"logging"`
	Output      OutputConfig       `json:"output"`
}

// Default returns the configuration used for keys absent from every source.
func Default() Config {
	return Config{
		Simulation: DefaultSimulation(),
		Optimizer:  optimizer.DefaultConfig(),
	}
}

// Load reads path, applies environment overrides, fills defaults and
// validates every section. An empty path loads defaults and environment only.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, err
	}
	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func envKey(s string) string {
	s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// SetDefaults fills unset fields of every section.
func (c *Config) SetDefaults() {
	c.Weather.SetDefaults()
	c.Simulation.SetDefaults()
	c.Optimizer.SetDefaults()
	c.Optimizer.Enabled = c.Simulation.UseSurfaceOptimisation
	c.Diagnostics.SetDefaults()
	c.Logging.SetDefaults()
	c.Output.SetDefaults()
}

// Validate checks every section. The house is validated by the commands
// that use it since batch runs read houses from their own file.
func (c Config) Validate() error {
	if err := c.Simulation.Validate(); err != nil {
		return err
	}
	if err := c.Optimizer.Validate(); err != nil {
		return fmt.Errorf("optimizer: %w", err)
	}
	if err := c.Diagnostics.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}
