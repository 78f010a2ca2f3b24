package scheduler

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/kilianp07/heatplan/core/logger"
	"github.com/kilianp07/heatplan/core/metrics"
	"github.com/kilianp07/heatplan/core/model"
	"github.com/kilianp07/heatplan/core/optimizer"
	"github.com/kilianp07/heatplan/core/surface"
	"github.com/kilianp07/heatplan/internal/eventbus"
)

// Config defines the scheduling parameters loaded from configuration.
type Config struct {
	// Workers bounds the number of combinations optimised concurrently.
	// Zero uses GOMAXPROCS, one runs sequentially.
	Workers   int              `json:"workers" yaml:"workers" mapstructure:"workers"`
	Optimizer optimizer.Config `json:"optimizer" yaml:"optimizer" mapstructure:"optimizer"`
	// KeepSurfaces retains a snapshot of every cost surface in the results.
	KeepSurfaces bool `json:"keep_surfaces" yaml:"keep_surfaces" mapstructure:"keep_surfaces"`
}

// Result is the outcome of one combination.
type Result struct {
	Plan          Plan
	Specification model.Specification
	Stats         optimizer.Stats
	Surface       [][]float64 // nil unless Config.KeepSurfaces
	Duration      time.Duration
}

// Run is the outcome of optimising every combination of a house.
type Run struct {
	ID       string
	House    string
	Results  []Result // in model.Combinations() order
	Duration time.Duration
}

// Best returns the evaluated result with the lowest NPC.
func (r Run) Best() (Result, bool) {
	best, found := Result{}, false
	for _, res := range r.Results {
		if !res.Specification.Evaluated {
			continue
		}
		if !found || res.Specification.Result.NPC < best.Specification.Result.NPC {
			best, found = res, true
		}
	}
	return best, found
}

// Scheduler optimises every combination for one set of annual inputs.
type Scheduler struct {
	eval      surface.Evaluator
	houseSize float64
	maxVolume float64
	cfg       Config
	sink      metrics.MetricsSink
	bus       eventbus.EventBus
	log       logger.Logger
	recorder  surface.NodeRecorder
}

// New returns a Scheduler. sink and bus may be nil.
func New(eval surface.Evaluator, houseSize, maxVolume float64, cfg Config, sink metrics.MetricsSink, bus eventbus.EventBus, log logger.Logger) *Scheduler {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	if log == nil {
		log = logger.Nop{}
	}
	return &Scheduler{
		eval:      eval,
		houseSize: houseSize,
		maxVolume: maxVolume,
		cfg:       cfg,
		sink:      sink,
		bus:       bus,
		log:       log,
	}
}

// SetRecorder configures the recorder receiving every simulated node. It is
// shared by all workers and must be safe for concurrent use.
func (s *Scheduler) SetRecorder(r surface.NodeRecorder) {
	s.recorder = r
}

func (s *Scheduler) workers() int {
	if s.cfg.Workers > 0 {
		return s.cfg.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Run optimises every combination. house labels the results. Cancelling ctx
// stops combinations that have not started yet.
func (s *Scheduler) Run(ctx context.Context, house string) (Run, error) {
	start := time.Now()
	run := Run{ID: uuid.NewString(), House: house}
	combos := model.Combinations()
	results := make([]Result, len(combos))

	s.log.Infof("run %s: optimising %d combinations for %q with %d workers", run.ID, len(combos), house, s.workers())

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers())
	for k, c := range combos {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[k] = s.optimise(c)
			s.publish(run, results[k])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return run, fmt.Errorf("run %s: %w", run.ID, err)
	}

	run.Results = results
	run.Duration = time.Since(start)
	s.complete(run)
	return run, nil
}

// optimise searches the grid of c. It touches no state shared with other
// combinations apart from the concurrency-safe recorder.
func (s *Scheduler) optimise(c model.Combination) Result {
	start := time.Now()
	plan := NewPlan(c, s.houseSize, s.maxVolume)
	spec := model.NewSpecification(c)
	res := Result{Plan: plan}
	if !plan.Valid() {
		s.log.Warnf("%s: no room for solar sizing (range %d), skipping", c, plan.SolarRange)
		res.Specification = *spec
		return res
	}

	var opts []surface.Option
	if s.recorder != nil {
		opts = append(opts, surface.WithRecorder(s.recorder))
	}
	surf := surface.New(s.eval, c, plan.SolarRange, plan.StorageRange, plan.Sizes, spec, opts...)
	res.Stats = optimizer.Search(surf, plan.SolarRange, plan.StorageRange, s.cfg.Optimizer)
	res.Specification = *spec
	if s.cfg.KeepSurfaces {
		res.Surface = surf.Snapshot()
	}
	res.Duration = time.Since(start)

	s.log.Debugw("combination optimised", map[string]any{
		"combination": c.String(),
		"npc":         spec.Result.NPC,
		"points":      res.Stats.Points,
		"cells":       plan.Cells(),
		"exhaustive":  res.Stats.Exhaustive,
		"duration_ms": res.Duration.Milliseconds(),
	})
	return res
}

func (s *Scheduler) combinationResult(run Run, r Result) metrics.CombinationResult {
	return metrics.CombinationResult{
		RunID:         run.ID,
		House:         run.House,
		Specification: r.Specification,
		Points:        r.Stats.Points,
		Cells:         r.Plan.Cells(),
		Exhaustive:    r.Stats.Exhaustive,
		Duration:      r.Duration,
		Time:          time.Now(),
	}
}

func (s *Scheduler) publish(run Run, r Result) {
	cr := s.combinationResult(run, r)
	if err := s.sink.RecordCombination(cr); err != nil {
		s.log.Errorf("metrics error: %v", err)
	}
	if s.bus != nil {
		s.bus.Publish(CombinationEvaluated{Result: cr})
	}
}

func (s *Scheduler) complete(run Run) {
	sum := metrics.RunSummary{
		RunID:        run.ID,
		House:        run.House,
		Combinations: len(run.Results),
		BestNPC:      math.Inf(1),
		Duration:     run.Duration,
		Time:         time.Now(),
	}
	for _, r := range run.Results {
		sum.Points += r.Stats.Points
		if r.Specification.Evaluated {
			sum.Evaluated++
		}
	}
	if best, ok := run.Best(); ok {
		sum.Best = best.Specification.Combination
		sum.BestNPC = best.Specification.Result.NPC
		s.log.Infof("run %s: best system %s, NPC %.0f, %d points in %s", run.ID, sum.Best, sum.BestNPC, sum.Points, run.Duration)
	}
	if rr, ok := s.sink.(metrics.RunRecorder); ok {
		if err := rr.RecordRun(sum); err != nil {
			s.log.Errorf("run metrics error: %v", err)
		}
	}
	if s.bus != nil {
		s.bus.Publish(RunCompleted{Summary: sum})
	}
}
