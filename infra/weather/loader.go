// Package weather loads the hourly annual series consumed by the simulator
// from an assets directory:
//
//	<dir>/agile_tariff.csv
//	<dir>/outside_temps/lat_<lat>_lon_<lon>.csv
//	<dir>/solar_irradiances/lat_<lat>_lon_<lon>.csv
//
// Coordinates are rounded to the nearest 0.5 degree grid point.
package weather

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/kilianp07/heatplan/core/model"
)

const (
	agileFile          = "agile_tariff.csv"
	outsideTempsDir    = "outside_temps"
	solarIrradianceDir = "solar_irradiances"
)

// Config locates the weather assets.
type Config struct {
	AssetsDir string `json:"assets_dir" yaml:"assets_dir" mapstructure:"assets_dir"`
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.AssetsDir == "" {
		c.AssetsDir = "assets"
	}
}

// Loader reads weather series and keeps every file it has parsed, so houses
// sharing a grid point or the tariff file are only read once.
type Loader struct {
	dir   string
	mu    sync.Mutex
	cache map[string][]float64
}

// NewLoader returns a Loader rooted at cfg.AssetsDir.
func NewLoader(cfg Config) *Loader {
	cfg.SetDefaults()
	return &Loader{dir: cfg.AssetsDir, cache: make(map[string][]float64)}
}

// RoundCoordinate rounds v to the nearest 0.5 and normalises -0 to 0.
func RoundCoordinate(v float64) float64 {
	r := math.Round(v*2) / 2
	if r == 0 {
		return 0
	}
	return r
}

// SeriesFile returns the file name of the series for a coordinate.
func SeriesFile(lat, lon float64) string {
	return fmt.Sprintf("lat_%.1f_lon_%.1f.csv", RoundCoordinate(lat), RoundCoordinate(lon))
}

// Load returns the three series for the grid point nearest to (lat, lon).
func (l *Loader) Load(lat, lon float64) (model.Weather, error) {
	var (
		w   model.Weather
		err error
	)
	name := SeriesFile(lat, lon)
	if w.OutsideTemperature, err = l.series(filepath.Join(l.dir, outsideTempsDir, name)); err != nil {
		return w, err
	}
	if w.SolarIrradiance, err = l.series(filepath.Join(l.dir, solarIrradianceDir, name)); err != nil {
		return w, err
	}
	if w.AgilePrice, err = l.series(filepath.Join(l.dir, agileFile)); err != nil {
		return w, err
	}
	return w, nil
}

func (l *Loader) series(path string) ([]float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if s, ok := l.cache[path]; ok {
		return s, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open weather series: %w", err)
	}
	defer f.Close()
	s, err := ReadSeries(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	l.cache[path] = s
	return s, nil
}

// ReadSeries parses one value per hour from r. Values may be separated by
// commas or line breaks; values past the first 8760 are ignored.
func ReadSeries(r io.Reader) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	out := make([]float64, 0, model.HoursPerYear)
	for len(out) < model.HoursPerYear {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read series: %w", err)
		}
		for _, field := range rec {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				line, _ := cr.FieldPos(0)
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			out = append(out, v)
			if len(out) == model.HoursPerYear {
				break
			}
		}
	}
	if len(out) != model.HoursPerYear {
		return nil, fmt.Errorf("%w (got %d)", model.ErrWeatherLength, len(out))
	}
	return out, nil
}
