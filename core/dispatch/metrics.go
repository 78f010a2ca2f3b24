package dispatch

import "github.com/prometheus/client_golang/prometheus"

var evaluations *prometheus.CounterVec

func newCollectors() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "heatplan_dispatch_evaluations_total",
			Help: "Number of annual dispatch simulations run",
		},
		[]string{"heat_option", "tariff"},
	)
}

func init() {
	evaluations = newCollectors()
	MustRegisterMetrics(nil)
}

// MustRegisterMetrics registers the simulator metrics on reg.
// If reg is nil, prometheus.DefaultRegisterer is used.
func MustRegisterMetrics(reg prometheus.Registerer) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(evaluations)
}

// ResetMetrics reinitializes the collectors for testing purposes and
// registers them on reg if not nil.
func ResetMetrics(reg prometheus.Registerer) {
	evaluations = newCollectors()
	if reg != nil {
		MustRegisterMetrics(reg)
	}
}
