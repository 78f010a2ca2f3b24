package dispatch

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/kilianp07/heatplan/core/model"
	"github.com/kilianp07/heatplan/test/util"
)

func TestMetrics_CountsEvaluations(t *testing.T) {
	reg := prometheus.NewRegistry()
	ResetMetrics(reg)
	t.Cleanup(func() { ResetMetrics(nil) })

	sim := NewSimulator(util.SmallHouse())
	sim.Evaluate(Request{Combination: resistiveNoSolar, StorageVolume: 0.1, Tariff: model.FlatRate})
	sim.Evaluate(Request{Combination: resistiveNoSolar, StorageVolume: 0.2, Tariff: model.FlatRate})

	assert.Equal(t, 2.0, testutil.ToFloat64(evaluations.WithLabelValues("ERH", "flat-rate")))
	n, err := testutil.GatherAndCount(reg, "heatplan_dispatch_evaluations_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}
