package metrics_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	metrics "github.com/kilianp07/heatplan/core/metrics"
)

func TestConfigDecodeYAML(t *testing.T) {
	data := `prometheus_port: ":9100"
sinks:
  - type: prometheus
  - type: influx
    conf:
      url: http://localhost:8086
      bucket: heatplan
`
	var cfg metrics.Config
	require.NoError(t, yaml.Unmarshal([]byte(data), &cfg))
	assert.Equal(t, ":9100", cfg.PrometheusPort)
	require.Len(t, cfg.Sinks, 2)
	assert.Equal(t, "influx", cfg.Sinks[1].Type)
	assert.Equal(t, "heatplan", cfg.Sinks[1].Conf["bucket"])
}

func TestConfigDecodeJSON(t *testing.T) {
	var cfg metrics.Config
	require.NoError(t, json.Unmarshal([]byte(`{"sinks":[{"type":"mqtt","conf":{"broker":"tcp://b:1883"}}]}`), &cfg))
	require.Len(t, cfg.Sinks, 1)
	assert.Equal(t, "tcp://b:1883", cfg.Sinks[0].Conf["broker"])

	assert.Error(t, json.Unmarshal([]byte(`{"sinks":"nop"}`), &cfg))
}
