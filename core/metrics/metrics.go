package metrics

import (
	"errors"
	"time"

	"github.com/kilianp07/heatplan/core/model"
)

// CombinationResult is the outcome of optimising one technology combination.
type CombinationResult struct {
	RunID         string
	House         string
	Specification model.Specification
	// Points is the number of distinct sizing points simulated out of Cells.
	Points     int
	Cells      int
	Exhaustive bool
	Duration   time.Duration
	Time       time.Time
}

// MetricsSink records combination results for observability purposes.
type MetricsSink interface {
	RecordCombination(res CombinationResult) error
}

// RunSummary describes a completed optimisation run over every combination.
type RunSummary struct {
	RunID        string
	House        string
	Combinations int
	Evaluated    int
	Best         model.Combination
	BestNPC      float64
	Points       int
	Duration     time.Duration
	Time         time.Time
}

// RunRecorder is implemented by sinks able to record run summaries.
type RunRecorder interface {
	RecordRun(sum RunSummary) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordCombination(CombinationResult) error { return nil }
func (NopSink) RecordRun(RunSummary) error                { return nil }

// MultiSink fans records out to several sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordCombination forwards the record to all sinks, returning the first error encountered.
func (m *MultiSink) RecordCombination(res CombinationResult) error {
	for _, s := range m.Sinks {
		if err := s.RecordCombination(res); err != nil {
			return err
		}
	}
	return nil
}

// RecordRun forwards run summaries to the sinks that support them.
func (m *MultiSink) RecordRun(sum RunSummary) error {
	for _, s := range m.Sinks {
		if rr, ok := s.(RunRecorder); ok {
			if err := rr.RecordRun(sum); err != nil {
				return err
			}
		}
	}
	return nil
}

// Close releases every sink holding resources.
func (m *MultiSink) Close() error {
	var errs []error
	for _, s := range m.Sinks {
		errs = append(errs, CloseSink(s))
	}
	return errors.Join(errs...)
}

// CloseSink closes s when it implements Close() or Close() error.
func CloseSink(s MetricsSink) error {
	switch c := s.(type) {
	case interface{ Close() error }:
		return c.Close()
	case interface{ Close() }:
		c.Close()
	}
	return nil
}
