package surface

import "github.com/prometheus/client_golang/prometheus"

var (
	cellsComputed *prometheus.CounterVec
	cacheHits     *prometheus.CounterVec
)

func newCollectors() (*prometheus.CounterVec, *prometheus.CounterVec) {
	computed := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "heatplan_surface_cells_computed_total",
			Help: "Number of sizing grid points simulated",
		},
		[]string{"combination"},
	)
	hits := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "heatplan_surface_cache_hits_total",
			Help: "Number of sizing grid lookups served from the cache",
		},
		[]string{"combination"},
	)
	return computed, hits
}

func init() {
	cellsComputed, cacheHits = newCollectors()
	MustRegisterMetrics(nil)
}

// MustRegisterMetrics registers the surface metrics on reg.
// If reg is nil, prometheus.DefaultRegisterer is used.
func MustRegisterMetrics(reg prometheus.Registerer) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(cellsComputed, cacheHits)
}

// ResetMetrics reinitializes the collectors for testing purposes and
// registers them on reg if not nil.
func ResetMetrics(reg prometheus.Registerer) {
	cellsComputed, cacheHits = newCollectors()
	if reg != nil {
		MustRegisterMetrics(reg)
	}
}
