package optimizer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/heatplan/core/dispatch"
	"github.com/kilianp07/heatplan/core/model"
	"github.com/kilianp07/heatplan/core/surface"
	"github.com/kilianp07/heatplan/test/util"
)

// funcSurface evaluates f and counts calls per point.
type funcSurface struct {
	f     func(i, j int) float64
	calls map[[2]int]int
}

func newFuncSurface(f func(i, j int) float64) *funcSurface {
	return &funcSurface{f: f, calls: map[[2]int]int{}}
}

func (s *funcSurface) GetOrCompute(i, j int) float64 {
	s.calls[[2]int{i, j}]++
	return s.f(i, j)
}

func cone(a, b int) func(i, j int) float64 {
	return func(i, j int) float64 {
		return math.Abs(float64(i-a)) + math.Abs(float64(j-b)) + 100
	}
}

func exactConfig() Config {
	cfg := DefaultConfig()
	cfg.Damping = 1
	cfg.LooseDamping = 1
	return cfg
}

func TestOptimize_ConeMatchesExhaustive(t *testing.T) {
	for _, apex := range [][2]int{{7, 22}, {0, 0}, {39, 30}, {20, 15}, {33, 4}} {
		f := cone(apex[0], apex[1])
		want := Exhaustive(newFuncSurface(f), 40, 31)

		s := newFuncSurface(f)
		got := Search(s, 40, 31, exactConfig())

		assert.False(t, got.Exhaustive)
		assert.Equal(t, want.Min, got.Min, "apex %v", apex)
		assert.Equal(t, model.SizingPoint{Solar: apex[0], Storage: apex[1]}, got.Best)
		assert.Less(t, got.Points, 40*31, "apex %v should prune", apex)
		assert.Equal(t, len(s.calls), got.Points)
		assert.Positive(t, got.Rounds)
	}
}

func TestOptimize_PiecewiseLinear(t *testing.T) {
	surfaces := map[string]func(i, j int) float64{
		"plane":  func(i, j int) float64 { return 3*float64(i) + 2*float64(j) },
		"tilted": func(i, j int) float64 { return 500 - 4*float64(i) + 0.5*float64(j) },
		"valley": func(i, j int) float64 { return 10*math.Abs(float64(i)-12.5) + float64(j) },
	}
	for name, f := range surfaces {
		want := Exhaustive(newFuncSurface(f), 30, 20)
		got := Optimize(newFuncSurface(f), 30, 20, exactConfig())
		assert.Equal(t, want.Min, got.Min, name)
		assert.LessOrEqual(t, got.Points, want.Points, name)
	}
}

func TestSearch_FallsBackOnSmallGrids(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		x, y       int
		exhaustive bool
	}{
		{3, 100, true},
		{100, 3, true},
		{7, 7, true},
		{8, 7, false},
		{4, 14, false},
		{1, 1, true},
	}
	for _, c := range cases {
		s := newFuncSurface(cone(0, 0))
		st := Search(s, c.x, c.y, cfg)
		assert.Equal(t, c.exhaustive, st.Exhaustive, "%dx%d", c.x, c.y)
		if c.exhaustive {
			assert.Equal(t, c.x*c.y, st.Points)
		}
	}

	cfg.Enabled = false
	st := Search(newFuncSurface(cone(0, 0)), 40, 40, cfg)
	assert.True(t, st.Exhaustive)
}

func TestOptimize_NeverExceedsGrid(t *testing.T) {
	s := newFuncSurface(func(i, j int) float64 { return math.Sin(float64(i)) * math.Cos(float64(j)*0.7) })
	st := Optimize(s, 25, 12, DefaultConfig())
	assert.LessOrEqual(t, st.Points, 25*12)
	for p := range s.calls {
		assert.True(t, p[0] >= 0 && p[0] < 25 && p[1] >= 0 && p[1] < 12, "%v", p)
	}
}

func TestLinspace(t *testing.T) {
	assert.Equal(t, []int{0, 13, 26, 39}, linspace(39, 3))
	assert.Equal(t, []int{0, 1, 2, 3}, linspace(3, 3))
	assert.Equal(t, 3, segments(40, DefaultConfig()))
	assert.Equal(t, 4, segments(450, DefaultConfig()))
	assert.Equal(t, 1, segments(2, DefaultConfig()))
}

func TestConfig(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0.38, cfg.damping(200))
	assert.Equal(t, 0.12, cfg.damping(201))

	cfg.Damping = -1
	assert.Error(t, cfg.Validate())
}

// A 4x4 grid of a real combination must match the exhaustive scan exactly.
func TestSearch_SimulatorGrid(t *testing.T) {
	c := model.Combination{Heat: model.AirSourceHeatPump, Solar: model.SolarPV}
	sim := dispatch.NewSimulator(util.SunnyHouse())
	sizing := func(p model.SizingPoint) (int, int, float64) {
		pv, st := dispatch.SolarSizes(c.Solar, p.Solar, 14)
		return pv, st, dispatch.StorageVolume(p.Storage)
	}

	exSpec := model.NewSpecification(c)
	want := Exhaustive(surface.New(sim, c, 4, 4, sizing, exSpec), 4, 4)

	for _, run := range []func(*surface.Surface) Stats{
		func(s *surface.Surface) Stats { return Search(s, 4, 4, DefaultConfig()) },
		func(s *surface.Surface) Stats { return Optimize(s, 4, 4, DefaultConfig()) },
	} {
		spec := model.NewSpecification(c)
		got := run(surface.New(sim, c, 4, 4, sizing, spec))
		assert.Equal(t, want.Min, got.Min)
		assert.Equal(t, want.Best, got.Best)
		assert.Equal(t, *exSpec, *spec)
	}
}
