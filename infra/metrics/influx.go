package metrics

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/heatplan/core/metrics"
	"github.com/kilianp07/heatplan/infra/logger"
)

// InfluxConfig holds the InfluxDB v2 connection settings.
type InfluxConfig struct {
	URL    string `json:"url" yaml:"url" mapstructure:"url"`
	Token  string `json:"token" yaml:"token" mapstructure:"token"`
	Org    string `json:"org" yaml:"org" mapstructure:"org"`
	Bucket string `json:"bucket" yaml:"bucket" mapstructure:"bucket"`
}

// InfluxSink writes optimisation results to an InfluxDB instance using the official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(cfg InfluxConfig) *InfluxSink {
	base := strings.TrimSuffix(cfg.URL, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, cfg.Token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.Org, cfg.Bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns a NopSink
// if the health check fails.
func NewInfluxSinkWithFallback(cfg InfluxConfig) coremetrics.MetricsSink {
	sink := NewInfluxSink(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordCombination writes one combination_result point. Unevaluated
// combinations carry no cost fields.
func (s *InfluxSink) RecordCombination(res coremetrics.CombinationResult) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	spec := res.Specification
	p := write.NewPointWithMeasurement("combination_result").
		AddTag("run_id", res.RunID).
		AddTag("house", res.House).
		AddTag("heat", spec.Combination.Heat.Slug()).
		AddTag("solar", spec.Combination.Solar.Slug()).
		AddTag("exhaustive", strconv.FormatBool(res.Exhaustive)).
		AddField("points", res.Points).
		AddField("cells", res.Cells).
		AddField("duration_ms", res.Duration.Milliseconds())
	if spec.Evaluated {
		p = p.AddTag("tariff", spec.Tariff.String()).
			AddField("npc", round3(spec.Result.NPC)).
			AddField("capex", round3(spec.Result.Capex)).
			AddField("opex", round3(spec.Result.Opex())).
			AddField("emissions", round3(spec.Result.Emissions)).
			AddField("pv_size", spec.PVSize).
			AddField("solar_thermal_size", spec.SolarThermalSize).
			AddField("storage_volume", round3(spec.StorageVolume))
	}
	p = p.SetTime(res.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordRun writes one run_summary point.
func (s *InfluxSink) RecordRun(sum coremetrics.RunSummary) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("run_summary").
		AddTag("run_id", sum.RunID).
		AddTag("house", sum.House).
		AddField("combinations", sum.Combinations).
		AddField("evaluated", sum.Evaluated).
		AddField("points", sum.Points).
		AddField("duration_ms", sum.Duration.Milliseconds())
	if sum.Evaluated > 0 {
		p = p.AddTag("best", sum.Best.String()).
			AddField("best_npc", round3(sum.BestNPC))
	}
	p = p.SetTime(sum.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the client resources.
func (s *InfluxSink) Close() {
	s.client.Close()
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
