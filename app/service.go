package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/kilianp07/heatplan/config"
	"github.com/kilianp07/heatplan/core/baseline"
	"github.com/kilianp07/heatplan/core/building"
	"github.com/kilianp07/heatplan/core/diagnostics"
	"github.com/kilianp07/heatplan/core/dispatch"
	coremetrics "github.com/kilianp07/heatplan/core/metrics"
	"github.com/kilianp07/heatplan/core/model"
	"github.com/kilianp07/heatplan/core/scheduler"
	"github.com/kilianp07/heatplan/infra/logger"
	"github.com/kilianp07/heatplan/infra/metrics"
	"github.com/kilianp07/heatplan/infra/weather"
	"github.com/kilianp07/heatplan/internal/eventbus"
	"github.com/kilianp07/heatplan/pkg/export"
)

// WeatherSource provides the annual series for a location.
type WeatherSource interface {
	Load(lat, lon float64) (model.Weather, error)
}

// Service optimises houses with the configured stack.
type Service struct {
	cfg     *config.Config
	log     logger.Logger
	weather WeatherSource
	store   diagnostics.Store
	sink    coremetrics.MetricsSink

	promOnce sync.Once
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	if err := logger.SetLevel(cfg.Logging.Level); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logg := logger.New("service")

	store, err := diagnostics.Open(cfg.Diagnostics)
	if err != nil {
		return nil, fmt.Errorf("diagnostics store: %w", err)
	}
	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		if store != nil {
			_ = store.Close()
		}
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	return &Service{
		cfg:     cfg,
		log:     logg,
		weather: weather.NewLoader(cfg.Weather),
		store:   store,
		sink:    sink,
	}, nil
}

// SetWeatherSource replaces the assets loader.
func (s *Service) SetWeatherSource(w WeatherSource) { s.weather = w }

// Store returns the diagnostics store, nil when disabled.
func (s *Service) Store() diagnostics.Store { return s.store }

// serve starts the Prometheus endpoint once, bound to ctx.
func (s *Service) serve(ctx context.Context) {
	port := s.cfg.Metrics.PrometheusPort
	if port == "" {
		return
	}
	s.promOnce.Do(func() {
		addr := port
		if !strings.Contains(addr, ":") {
			addr = ":" + addr
		}
		go func() {
			if err := metrics.StartPromServer(ctx, addr, nil, s.log); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	})
}

func (s *Service) prepare(spec building.HouseSpec) (building.Building, *dispatch.Simulator, error) {
	w, err := s.weather.Load(spec.Latitude, spec.Longitude)
	if err != nil {
		return building.Building{}, nil, fmt.Errorf("weather: %w", err)
	}
	b, err := building.Prepare(spec, w)
	if err != nil {
		return building.Building{}, nil, err
	}
	if b.ColdestDefaulted {
		s.log.Warnf("%s: no coldest-hour data near %.2f,%.2f, sizing heat pumps for 0 degC", houseName(spec), spec.Latitude, spec.Longitude)
	}
	sim := dispatch.NewSimulator(model.AnnualInputs{
		House:          b.Profile,
		Weather:        w,
		DiscountFactor: s.cfg.Simulation.DiscountFactor(),
	})
	return b, sim, nil
}

func houseName(spec building.HouseSpec) string {
	if spec.Name != "" {
		return spec.Name
	}
	return spec.Postcode
}

// Optimize runs every combination for one house and builds its report.
func (s *Service) Optimize(ctx context.Context, spec building.HouseSpec) (export.Report, scheduler.Run, error) {
	s.serve(ctx)
	b, sim, err := s.prepare(spec)
	if err != nil {
		return export.Report{}, scheduler.Run{}, err
	}
	name := houseName(spec)

	bus := eventbus.New(eventbus.WithBuffer(s.cfg.Simulation.EventBuffer))
	done := metrics.StartEventCollector(ctx, bus, s.sink, logger.New("collector"))

	schedCfg := scheduler.Config{
		Workers:      s.cfg.Simulation.Workers,
		Optimizer:    s.cfg.Optimizer,
		KeepSurfaces: s.cfg.Simulation.KeepSurfaces || s.cfg.Output.SurfacesDir != "",
	}
	sched := scheduler.New(sim, spec.HouseSize, spec.TESVolumeMax, schedCfg, nil, bus, logger.New("scheduler"))
	var rec *diagnostics.Recorder
	if s.store != nil {
		rec = diagnostics.NewRecorder(s.store, name, logger.New("diagnostics"))
		sched.SetRecorder(rec)
	}

	run, err := sched.Run(ctx, name)
	bus.Close()
	<-done
	if n := bus.Dropped(); n > 0 {
		s.log.Warnf("run %s: %d events dropped by slow observers", run.ID, n)
	}
	if rec != nil {
		s.log.Infof("diagnostics session %s: %d nodes written, %d failed", rec.Session(), rec.Written(), rec.Failures())
	}
	if err != nil {
		return export.Report{}, run, err
	}

	if best, ok := run.Best(); ok {
		s.log.Infof("run %s: best %s at %.0f over %s", run.ID, best.Specification.Combination, best.Specification.Result.NPC, run.Duration)
	} else {
		s.log.Warnf("run %s: no combination could be evaluated", run.ID)
	}
	if dir := s.cfg.Output.SurfacesDir; dir != "" {
		if err := writeSurfaces(dir, name, run); err != nil {
			return export.Report{}, run, err
		}
	}
	return s.report(b, run), run, nil
}

func (s *Service) report(b building.Building, run scheduler.Run) export.Report {
	years := s.cfg.Simulation.NPCYears
	systems := make([]model.Specification, len(run.Results))
	for i, r := range run.Results {
		systems[i] = r.Specification
	}
	return export.Report{
		House:                run.House,
		RunID:                run.ID,
		ThermalTransmittance: b.Profile.ThermalTransmittance,
		OptimisedEPCDemand:   b.OptimisedEPCDemand,
		NPCYears:             years,
		ResistiveDemand:      b.Profile.ResistiveDemand,
		HeatPumpDemand:       b.Profile.HeatPumpDemand,
		Systems:              systems,
		Baseline:             baseline.Evaluate(b.Profile, b.Spec.EPCSpaceHeating, s.cfg.Simulation.DiscountFactor(), years),
	}
}

func writeSurfaces(dir, house string, run scheduler.Run) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, r := range run.Results {
		if r.Surface == nil {
			continue
		}
		c := r.Plan.Combination
		name := fmt.Sprintf("%s_%s_%s.csv", fileSegment(house), c.Heat.Slug(), c.Solar.Slug())
		if err := writeFile(filepath.Join(dir, name), func(w io.Writer) error {
			return export.WriteSurfaceCSV(w, r.Surface)
		}); err != nil {
			return fmt.Errorf("surface %s: %w", c, err)
		}
	}
	return nil
}

func fileSegment(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ' ', ':':
			return '_'
		}
		return r
	}, s)
}

// Batch optimises every house in order. A failing house is logged and
// skipped; the joined errors are returned with the successful reports.
func (s *Service) Batch(ctx context.Context, b scheduler.Batch) ([]export.Report, error) {
	var (
		reports []export.Report
		errs    []error
	)
	for i, h := range b.Houses {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		rep, _, err := s.Optimize(ctx, h)
		if err != nil {
			s.log.Errorf("house %d (%s): %v", i, houseName(h), err)
			errs = append(errs, fmt.Errorf("house %d: %w", i, err))
			continue
		}
		reports = append(reports, rep)
	}
	return reports, errors.Join(errs...)
}

// Evaluate simulates a single system. When trace is not nil the hourly
// state is written to it as CSV.
func (s *Service) Evaluate(spec building.HouseSpec, req dispatch.Request, trace io.Writer) (model.DispatchResult, error) {
	_, sim, err := s.prepare(spec)
	if err != nil {
		return model.DispatchResult{}, err
	}
	if trace == nil {
		return sim.Evaluate(req), nil
	}
	tw := export.NewTraceWriter(trace)
	res := sim.Trace(req, tw.Write)
	return res, tw.Flush()
}

// WriteReports writes reports in the configured format to w.
func (s *Service) WriteReports(w io.Writer, reports []export.Report) error {
	if s.cfg.Output.Format == "csv" {
		for _, r := range reports {
			if err := export.WriteCSV(w, r); err != nil {
				return err
			}
		}
		return nil
	}
	if len(reports) == 1 {
		return export.WriteJSON(w, reports[0])
	}
	return export.WriteJSONBatch(w, reports)
}

// Output writes reports to the configured path, stdout when unset.
func (s *Service) Output(reports []export.Report) error {
	path := s.cfg.Output.Path
	if path == "" || path == "-" {
		return s.WriteReports(os.Stdout, reports)
	}
	return writeFile(path, func(w io.Writer) error { return s.WriteReports(w, reports) })
}

func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(f)
}

// Run optimises the configured house and writes its report.
func (s *Service) Run(ctx context.Context) error {
	rep, _, err := s.Optimize(ctx, s.cfg.House)
	if err != nil {
		return err
	}
	return s.Output([]export.Report{rep})
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	errs := []error{coremetrics.CloseSink(s.sink)}
	if s.store != nil {
		errs = append(errs, s.store.Close())
	}
	return errors.Join(errs...)
}
