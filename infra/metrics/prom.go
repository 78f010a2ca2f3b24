package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/heatplan/core/metrics"
)

// PromSink records optimisation results in Prometheus metrics.
type PromSink struct {
	npc         *prometheus.GaugeVec
	points      *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	runs        *prometheus.CounterVec
	runDuration *prometheus.GaugeVec
}

// NewPromSink registers result metrics on the default Prometheus registerer.
// The HTTP endpoint is served separately with StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer. Collectors
// already registered by a previous sink are reused.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{
		npc: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "heatplan_combination_npc",
			Help: "Net present cost of the best system found for a combination",
		}, []string{"house", "heat", "solar"}),
		points: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "heatplan_combination_points_total",
			Help: "Sizing points simulated while optimising a combination",
		}, []string{"heat", "solar"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "heatplan_combination_duration_seconds",
			Help:    "Wall time spent optimising one combination",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}, []string{"heat", "solar"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "heatplan_runs_total",
			Help: "Completed optimisation runs",
		}, []string{"house"}),
		runDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "heatplan_run_duration_seconds",
			Help: "Wall time of the last optimisation run",
		}, []string{"house"}),
	}
	var err error
	if s.npc, err = register(reg, s.npc); err != nil {
		return nil, err
	}
	if s.points, err = register(reg, s.points); err != nil {
		return nil, err
	}
	if s.duration, err = register(reg, s.duration); err != nil {
		return nil, err
	}
	if s.runs, err = register(reg, s.runs); err != nil {
		return nil, err
	}
	if s.runDuration, err = register(reg, s.runDuration); err != nil {
		return nil, err
	}
	return s, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordCombination updates the NPC gauge, point counter and duration histogram.
// The NPC gauge is left untouched for combinations that could not be evaluated.
func (s *PromSink) RecordCombination(res coremetrics.CombinationResult) error {
	c := res.Specification.Combination
	heat, solar := c.Heat.Slug(), c.Solar.Slug()
	if res.Specification.Evaluated {
		s.npc.WithLabelValues(res.House, heat, solar).Set(res.Specification.Result.NPC)
	}
	s.points.WithLabelValues(heat, solar).Add(float64(res.Points))
	s.duration.WithLabelValues(heat, solar).Observe(res.Duration.Seconds())
	return nil
}

// RecordRun counts the run and records its duration.
func (s *PromSink) RecordRun(sum coremetrics.RunSummary) error {
	s.runs.WithLabelValues(sum.House).Inc()
	s.runDuration.WithLabelValues(sum.House).Set(sum.Duration.Seconds())
	return nil
}
