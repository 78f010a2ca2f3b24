package scheduler

import "github.com/kilianp07/heatplan/core/metrics"

// CombinationEvaluated is published on the event bus when a combination finishes.
type CombinationEvaluated struct {
	Result metrics.CombinationResult
}

// RunCompleted is published once every combination of a run has finished.
type RunCompleted struct {
	Summary metrics.RunSummary
}
