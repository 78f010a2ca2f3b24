// Package surface memoizes the minimum net present cost over tariffs for each
// point of a combination's sizing grid.
package surface

import (
	"fmt"
	"math"

	"github.com/kilianp07/heatplan/core/dispatch"
	"github.com/kilianp07/heatplan/core/model"
)

// Evaluator simulates one system and tariff. *dispatch.Simulator implements it.
type Evaluator interface {
	Evaluate(req dispatch.Request) model.DispatchResult
}

// Sizing maps a grid point to physical sizes.
type Sizing func(p model.SizingPoint) (pvSize, solarThermalSize int, storageVolume float64)

// Node is one simulated (point, tariff) pair.
type Node struct {
	Combination model.Combination
	Point       model.SizingPoint
	Request     dispatch.Request
	Result      model.DispatchResult
}

// NodeRecorder receives every simulated node.
type NodeRecorder interface {
	RecordNode(n Node)
}

// Option configures a Surface.
type Option func(*Surface)

// WithRecorder sets the node recorder.
func WithRecorder(r NodeRecorder) Option {
	return func(s *Surface) { s.recorder = r }
}

// WithTariffs restricts the tariffs evaluated at each point.
func WithTariffs(tariffs ...model.Tariff) Option {
	return func(s *Surface) { s.tariffs = tariffs }
}

// Surface is the cost surface of one combination. It is not safe for
// concurrent use; each combination owns its own Surface.
type Surface struct {
	eval        Evaluator
	combination model.Combination
	sizing      Sizing
	spec        *model.Specification
	recorder    NodeRecorder
	tariffs     []model.Tariff

	xSize, ySize int
	cells        []float64
	computed     []bool

	evaluations int
	hits        int
	points      int
}

// New returns an empty xSize by ySize surface for combination c. Improvements
// found while computing cells are offered to spec.
func New(eval Evaluator, c model.Combination, xSize, ySize int, sizing Sizing, spec *model.Specification, opts ...Option) *Surface {
	s := &Surface{
		eval:        eval,
		combination: c,
		sizing:      sizing,
		spec:        spec,
		tariffs:     model.Tariffs[:],
		xSize:       xSize,
		ySize:       ySize,
		cells:       make([]float64, xSize*ySize),
		computed:    make([]bool, xSize*ySize),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Size returns the grid dimensions.
func (s *Surface) Size() (x, y int) { return s.xSize, s.ySize }

func (s *Surface) index(i, j int) int {
	if i < 0 || i >= s.xSize || j < 0 || j >= s.ySize {
		panic(fmt.Sprintf("surface: point (%d, %d) outside %dx%d grid", i, j, s.xSize, s.ySize))
	}
	return i*s.ySize + j
}

// GetOrCompute returns the minimum NPC over tariffs at (i, j), simulating
// every tariff the first time the point is requested.
func (s *Surface) GetOrCompute(i, j int) float64 {
	k := s.index(i, j)
	if s.computed[k] {
		s.hits++
		cacheHits.WithLabelValues(s.combination.String()).Inc()
		return s.cells[k]
	}

	p := model.SizingPoint{Solar: i, Storage: j}
	pv, st, volume := s.sizing(p)
	best := math.Inf(1)
	for _, t := range s.tariffs {
		req := dispatch.Request{
			Combination:      s.combination,
			PVSize:           pv,
			SolarThermalSize: st,
			StorageVolume:    volume,
			Tariff:           t,
		}
		res := s.eval.Evaluate(req)
		s.evaluations++
		if s.recorder != nil {
			s.recorder.RecordNode(Node{Combination: s.combination, Point: p, Request: req, Result: res})
		}
		if res.NPC < best {
			best = res.NPC
		}
		s.spec.Offer(model.Specification{
			Point:            p,
			PVSize:           pv,
			SolarThermalSize: st,
			StorageVolume:    volume,
			Tariff:           t,
			Result:           res,
		})
	}

	s.cells[k] = best
	s.computed[k] = true
	s.points++
	cellsComputed.WithLabelValues(s.combination.String()).Inc()
	return best
}

// Computed reports whether (i, j) has been evaluated.
func (s *Surface) Computed(i, j int) bool { return s.computed[s.index(i, j)] }

// Points returns the number of distinct grid points computed.
func (s *Surface) Points() int { return s.points }

// Evaluations returns the number of simulator calls made.
func (s *Surface) Evaluations() int { return s.evaluations }

// Hits returns the number of requests served from the cache.
func (s *Surface) Hits() int { return s.hits }

// Snapshot copies the grid, indexed [solar][storage]. Uncomputed points are NaN.
func (s *Surface) Snapshot() [][]float64 {
	out := make([][]float64, s.xSize)
	for i := range out {
		out[i] = make([]float64, s.ySize)
		for j := range out[i] {
			k := i*s.ySize + j
			if s.computed[k] {
				out[i][j] = s.cells[k]
			} else {
				out[i][j] = math.NaN()
			}
		}
	}
	return out
}
