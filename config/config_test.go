package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/heatplan/core/dispatch"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "config.yaml", `house:
  name: "cottage"
  postcode: "CV4 7AL"
  latitude: 52.38
  longitude: -1.56
  occupants: 2
  house_size: 60
  thermostat_temperature: 20
  epc_space_heating: 3000
  tes_volume_max: 0.5
weather:
  assets_dir: "/data/assets"
simulation:
  workers: 4
  keep_surfaces: true
optimizer:
  damping: 0.2
diagnostics:
  backend: "sqlite"
metrics:
  prometheus_port: ":9100"
  sinks:
    - type: "nop"
    - type: "influx"
      conf:
        url: "http://localhost:8086"
logging:
  level: "debug"
output:
  format: "csv"
  surfaces_dir: "out/surfaces"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "cottage", cfg.House.Name)
	assert.Equal(t, "CV4 7AL", cfg.House.Postcode)
	assert.Equal(t, 52.38, cfg.House.Latitude)
	assert.Equal(t, 2, cfg.House.Occupants)
	assert.Equal(t, 0.5, cfg.House.TESVolumeMax)
	assert.Equal(t, "/data/assets", cfg.Weather.AssetsDir)
	assert.Equal(t, 4, cfg.Simulation.Workers)
	assert.True(t, cfg.Simulation.KeepSurfaces)
	assert.True(t, cfg.Simulation.UseSurfaceOptimisation)
	assert.InDelta(t, 0.035, cfg.Simulation.DiscountRate, 1e-12)
	assert.Equal(t, 20, cfg.Simulation.NPCYears)
	assert.Equal(t, 0.2, cfg.Optimizer.Damping)
	assert.Equal(t, 0.38, cfg.Optimizer.LooseDamping)
	assert.True(t, cfg.Optimizer.Enabled)
	assert.Equal(t, "sqlite", cfg.Diagnostics.Backend)
	assert.Equal(t, "nodes.db", cfg.Diagnostics.Path)
	require.Len(t, cfg.Metrics.Sinks, 2)
	assert.Equal(t, "influx", cfg.Metrics.Sinks[1].Type)
	assert.Equal(t, "http://localhost:8086", cfg.Metrics.Sinks[1].Conf["url"])
	assert.Equal(t, ":9100", cfg.Metrics.PrometheusPort)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "csv", cfg.Output.Format)
	assert.Equal(t, "out/surfaces", cfg.Output.SurfacesDir)
}

func TestLoad_JSONAndDefaults(t *testing.T) {
	path := writeFile(t, "config.json", `{"simulation":{"use_surface_optimisation":false}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Simulation.UseSurfaceOptimisation)
	assert.False(t, cfg.Optimizer.Enabled)
	assert.Equal(t, "assets", cfg.Weather.AssetsDir)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 256, cfg.Simulation.EventBuffer)
	assert.Empty(t, cfg.Diagnostics.Backend)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, "config.yaml", "simulation:\n  workers: 2\n")
	t.Setenv("HEATPLAN_SIMULATION__WORKERS", "8")
	t.Setenv("HEATPLAN_HOUSE__POSTCODE", "S1 2AB")
	t.Setenv("HEATPLAN_LOGGING__LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Simulation.Workers)
	assert.Equal(t, "S1 2AB", cfg.House.Postcode)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Optimizer.Enabled)
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]string{
		"format":    writeFile(t, "config.toml", "x = 1"),
		"level":     writeFile(t, "level.yaml", "logging:\n  level: loud\n"),
		"discount":  writeFile(t, "discount.yaml", "simulation:\n  discount_rate: 1.5\n"),
		"backend":   writeFile(t, "backend.yaml", "diagnostics:\n  backend: postgres\n"),
		"output":    writeFile(t, "output.yaml", "output:\n  format: xml\n"),
		"workers":   writeFile(t, "workers.yaml", "simulation:\n  workers: -1\n"),
		"optimizer": writeFile(t, "optimizer.yaml", "optimizer:\n  damping: -1\n"),
		"missing":   filepath.Join(t.TempDir(), "absent.yaml"),
	}
	for name, path := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSimulationDiscountFactor(t *testing.T) {
	s := DefaultSimulation()
	assert.InDelta(t, dispatch.CumulativeDiscountFactor(dispatch.DefaultDiscountRate, 20), s.DiscountFactor(), 1e-9)
	s.DiscountRate = 0
	assert.Equal(t, 20.0, s.DiscountFactor())
}
