package scheduler

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/heatplan/core/building"
	"github.com/kilianp07/heatplan/core/dispatch"
	"github.com/kilianp07/heatplan/core/metrics"
	"github.com/kilianp07/heatplan/core/model"
	"github.com/kilianp07/heatplan/core/optimizer"
	"github.com/kilianp07/heatplan/internal/eventbus"
)

// bowl is a smooth synthetic evaluator with its minimum at 6 m2 of PV and a
// 0.5 m3 store. It is a pure function and safe for concurrent use.
type bowl struct{}

func (bowl) Evaluate(req dispatch.Request) model.DispatchResult {
	npc := 5000 + 40*math.Abs(float64(req.PVSize+req.SolarThermalSize)-6) +
		800*math.Abs(req.StorageVolume-0.5) +
		300*float64(req.Combination.Heat) + 20*float64(req.Combination.Solar) + float64(req.Tariff)
	return model.DispatchResult{NPC: npc, Capex: 3000}
}

type recordingSink struct {
	mu      sync.Mutex
	results []metrics.CombinationResult
	runs    []metrics.RunSummary
}

func (r *recordingSink) RecordCombination(res metrics.CombinationResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, res)
	return nil
}

func (r *recordingSink) RecordRun(sum metrics.RunSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, sum)
	return nil
}

// testConfig disables damping so the search is exact on the bowl, whose
// slopes are uniform on each side of the minimum.
func testConfig(workers int) Config {
	opt := optimizer.DefaultConfig()
	opt.Damping = 1
	opt.LooseDamping = 1
	return Config{Workers: workers, Optimizer: opt}
}

func TestNewPlan(t *testing.T) {
	p := NewPlan(model.Combination{Heat: model.AirSourceHeatPump, Solar: model.SolarPVFlatPlate}, 100, 3.0)
	assert.Equal(t, 24, p.SolarMax)
	assert.Equal(t, 11, p.SolarRange)
	assert.Equal(t, 30, p.StorageRange)
	assert.Equal(t, 330, p.Cells())

	pv, st, vol := p.Sizes(model.SizingPoint{Solar: 3, Storage: 4})
	assert.Equal(t, 8, st)
	assert.Equal(t, 16, pv)
	assert.InDelta(t, 0.5, vol, 1e-12)

	tiny := NewPlan(model.Combination{Heat: model.ResistiveHeating, Solar: model.SolarPVEvacuatedTube}, 10, 0.5)
	assert.False(t, tiny.Valid())
	assert.Zero(t, tiny.Cells())
}

func TestRun_AllCombinations(t *testing.T) {
	sink := &recordingSink{}
	s := New(bowl{}, 100, 3.0, testConfig(4), sink, nil, nil)
	run, err := s.Run(context.Background(), "test-house")
	require.NoError(t, err)

	require.Len(t, run.Results, 21)
	assert.NotEmpty(t, run.ID)
	for k, c := range model.Combinations() {
		r := run.Results[k]
		assert.Equal(t, c, r.Specification.Combination)
		assert.True(t, r.Specification.Evaluated, c.String())
		assert.Equal(t, model.FlatRate, r.Specification.Tariff)
		assert.InDelta(t, 0.5, r.Specification.StorageVolume, 1e-9, c.String())
		assert.LessOrEqual(t, r.Stats.Points, r.Plan.Cells())
	}

	best, ok := run.Best()
	require.True(t, ok)
	assert.Equal(t, model.Combination{Heat: model.ResistiveHeating, Solar: model.SolarPV}, best.Specification.Combination)
	assert.Equal(t, 6, best.Specification.PVSize)

	assert.Len(t, sink.results, 21)
	require.Len(t, sink.runs, 1)
	assert.Equal(t, run.ID, sink.runs[0].RunID)
	assert.Equal(t, 21, sink.runs[0].Evaluated)
	assert.Equal(t, "test-house", sink.runs[0].House)
}

func TestRun_ParallelMatchesSequential(t *testing.T) {
	seq, err := New(bowl{}, 80, 2.0, testConfig(1), nil, nil, nil).Run(context.Background(), "h")
	require.NoError(t, err)
	par, err := New(bowl{}, 80, 2.0, testConfig(8), nil, nil, nil).Run(context.Background(), "h")
	require.NoError(t, err)
	for k := range seq.Results {
		assert.Equal(t, seq.Results[k].Specification, par.Results[k].Specification)
		assert.Equal(t, seq.Results[k].Stats, par.Results[k].Stats)
	}
}

func TestRun_SkipsEmptySolarRange(t *testing.T) {
	s := New(bowl{}, 12, 0.5, testConfig(2), nil, nil, nil)
	run, err := s.Run(context.Background(), "tiny")
	require.NoError(t, err)
	for _, r := range run.Results {
		shares := r.Plan.Combination.Solar.SharesRoof()
		assert.Equal(t, !shares, r.Specification.Evaluated, r.Plan.Combination.String())
		if shares {
			assert.True(t, math.IsInf(r.Specification.Result.NPC, 1))
		}
	}
}

func TestRun_KeepsSurfaces(t *testing.T) {
	cfg := testConfig(2)
	cfg.KeepSurfaces = true
	run, err := New(bowl{}, 60, 1.0, cfg, nil, nil, nil).Run(context.Background(), "h")
	require.NoError(t, err)
	r := run.Results[0]
	require.Len(t, r.Surface, r.Plan.SolarRange)
	assert.Len(t, r.Surface[0], r.Plan.StorageRange)
}

func TestRun_PublishesEvents(t *testing.T) {
	bus := eventbus.New(eventbus.WithBuffer(64))
	defer bus.Close()
	sub := bus.Subscribe()

	_, err := New(bowl{}, 60, 1.0, testConfig(3), nil, bus, nil).Run(context.Background(), "h")
	require.NoError(t, err)

	var combos, runs int
	timeout := time.After(time.Second)
	for combos+runs < 22 {
		select {
		case ev := <-sub:
			switch ev.(type) {
			case CombinationEvaluated:
				combos++
			case RunCompleted:
				runs++
			}
		case <-timeout:
			t.Fatalf("got %d combination and %d run events", combos, runs)
		}
	}
	assert.Equal(t, 21, combos)
	assert.Equal(t, 1, runs)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(bowl{}, 60, 1.0, testConfig(1), nil, nil, nil).Run(ctx, "h")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecodeBatch(t *testing.T) {
	data := `houses:
  - name: terrace
    postcode: CV4 7AL
    latitude: 52.38
    longitude: -1.58
    occupants: 2
    house_size: 60
    thermostat_temperature: 20
    epc_space_heating: 3000
    tes_volume_max: 0.5
`
	b, err := DecodeBatch(bytes.NewBufferString(data), "yaml")
	require.NoError(t, err)
	require.Len(t, b.Houses, 1)
	assert.Equal(t, "terrace", b.Houses[0].Name)
	assert.Equal(t, 60.0, b.Houses[0].HouseSize)

	_, err = DecodeBatch(bytes.NewBufferString(`{"houses":[{"postcode":"CV4 7AL"}]}`), "json")
	assert.ErrorIs(t, err, building.ErrInvalidHouse)

	_, err = DecodeBatch(bytes.NewBufferString(data), "toml")
	assert.Error(t, err)
}

func TestLoadBatchFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "houses.json")
	body := `{"houses":[{"postcode":"SW1A 1AA","latitude":51.5,"longitude":-0.14,"occupants":3,"house_size":90,"thermostat_temperature":21,"epc_space_heating":5000,"tes_volume_max":1}]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	b, err := LoadBatch(path)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Houses[0].Occupants)

	_, err = LoadBatch(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
