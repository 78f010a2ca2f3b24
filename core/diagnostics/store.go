// Package diagnostics persists every simulated node of a cost surface so a
// search can be inspected after the fact.
package diagnostics

import (
	"context"
	"fmt"
	"time"

	"github.com/kilianp07/heatplan/core/model"
)

// NodeRecord captures one simulated sizing point and tariff.
type NodeRecord struct {
	Session          string               `json:"session"`
	House            string               `json:"house"`
	Timestamp        time.Time            `json:"timestamp"`
	Heat             string               `json:"heat_option"`
	Solar            string               `json:"solar_option"`
	Point            model.SizingPoint    `json:"point"`
	PVSize           int                  `json:"pv_size"`
	SolarThermalSize int                  `json:"solar_thermal_size"`
	StorageVolume    float64              `json:"storage_volume"`
	Tariff           string               `json:"tariff"`
	Result           model.DispatchResult `json:"result"`
}

// Query defines filters for retrieving records. Empty fields match everything.
type Query struct {
	Session string
	House   string
	Heat    string
	Solar   string
	Tariff  string
	// Limit caps the number of records returned when positive.
	Limit int
}

func (q Query) matches(r NodeRecord) bool {
	return (q.Session == "" || r.Session == q.Session) &&
		(q.House == "" || r.House == q.House) &&
		(q.Heat == "" || r.Heat == q.Heat) &&
		(q.Solar == "" || r.Solar == q.Solar) &&
		(q.Tariff == "" || r.Tariff == q.Tariff)
}

func (q Query) full(n int) bool {
	return q.Limit > 0 && n >= q.Limit
}

// Store persists NodeRecords and supports querying.
type Store interface {
	Append(ctx context.Context, rec NodeRecord) error
	Query(ctx context.Context, q Query) ([]NodeRecord, error)
	Close() error
}

// Config selects the diagnostics backend.
type Config struct {
	// Backend is one of "", "jsonl", "rotating" or "sqlite". Empty disables diagnostics.
	Backend    string `json:"backend" yaml:"backend" mapstructure:"backend"`
	Path       string `json:"path" yaml:"path" mapstructure:"path"`
	MaxSizeMB  int    `json:"max_size_mb" yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int    `json:"max_backups" yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int    `json:"max_age_days" yaml:"max_age_days" mapstructure:"max_age_days"`
}

// SetDefaults fills unset fields for the selected backend.
func (c *Config) SetDefaults() {
	if c.Path == "" {
		switch c.Backend {
		case "sqlite":
			c.Path = "nodes.db"
		case "jsonl", "rotating":
			c.Path = "nodes.jsonl"
		}
	}
	if c.Backend == "rotating" {
		if c.MaxSizeMB <= 0 {
			c.MaxSizeMB = 100
		}
		if c.MaxBackups <= 0 {
			c.MaxBackups = 3
		}
	}
}

// Validate checks the backend name.
func (c Config) Validate() error {
	switch c.Backend {
	case "", "jsonl", "rotating", "sqlite":
		return nil
	default:
		return fmt.Errorf("diagnostics: unknown backend %q", c.Backend)
	}
}

// Open returns the configured store, or nil when diagnostics are disabled.
func Open(cfg Config) (Store, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case "jsonl":
		return NewJSONLStore(cfg.Path)
	case "rotating":
		return NewRotatingJSONLStore(cfg.Path, cfg.MaxSizeMB, cfg.MaxBackups, cfg.MaxAgeDays)
	case "sqlite":
		return NewSQLiteStore(cfg.Path)
	default:
		return nil, nil
	}
}
