package export

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/kilianp07/heatplan/core/dispatch"
)

var reportHeader = []string{
	"heat_option", "solar_option", "evaluated", "tariff",
	"pv_size", "solar_thermal_size", "storage_volume",
	"opex", "capex", "npc", "emissions",
}

func money(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteCSV writes one row per combination followed by the heat-only systems.
func WriteCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return err
	}
	for _, s := range r.Systems {
		row := []string{s.Combination.Heat.Slug(), s.Combination.Solar.Slug(), strconv.FormatBool(s.Evaluated), "", "", "", "", "", "", "", ""}
		if s.Evaluated {
			row[3] = s.Tariff.String()
			row[4] = strconv.Itoa(s.PVSize)
			row[5] = strconv.Itoa(s.SolarThermalSize)
			row[6] = number(s.StorageVolume)
			row[7] = money(s.Result.Opex())
			row[8] = money(s.Result.Capex)
			row[9] = money(s.Result.NPC)
			row[10] = money(s.Result.Emissions)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	for _, b := range r.Baseline.All() {
		row := []string{b.Name, "", "true", "", "", "", "", money(b.Opex), money(b.Capex), money(b.NPC), money(b.Emissions)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSurfaceCSV writes a cost surface with solar indices as rows and
// storage indices as columns. Cells never evaluated are written as NaN.
func WriteSurfaceCSV(w io.Writer, grid [][]float64) error {
	cw := csv.NewWriter(w)
	width := 0
	if len(grid) > 0 {
		width = len(grid[0])
	}
	header := make([]string, width+1)
	header[0] = "solar\\storage"
	for j := 0; j < width; j++ {
		header[j+1] = strconv.Itoa(j)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, row := range grid {
		rec := make([]string, len(row)+1)
		rec[0] = strconv.Itoa(i)
		for j, v := range row {
			if math.IsNaN(v) {
				rec[j+1] = "NaN"
			} else {
				rec[j+1] = money(v)
			}
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

var traceHeader = []string{
	"hour", "month", "hour_of_day", "inside_temperature", "state_of_charge",
	"space_demand", "hot_water_demand", "electrical_demand",
	"pv_generation", "solar_thermal", "import", "export", "off_peak",
}

// TraceWriter streams hourly simulator states as CSV. Its Write method can be
// passed directly to dispatch.Simulator.Trace.
type TraceWriter struct {
	cw     *csv.Writer
	header bool
	err    error
}

// NewTraceWriter returns a TraceWriter on w.
func NewTraceWriter(w io.Writer) *TraceWriter {
	return &TraceWriter{cw: csv.NewWriter(w)}
}

// Write appends one hour. The first error is kept and returned by Flush.
func (t *TraceWriter) Write(s dispatch.HourState) {
	if t.err != nil {
		return
	}
	if !t.header {
		t.header = true
		if t.err = t.cw.Write(traceHeader); t.err != nil {
			return
		}
	}
	t.err = t.cw.Write([]string{
		strconv.Itoa(s.Hour),
		strconv.Itoa(s.Month),
		strconv.Itoa(s.HourOfDay),
		number(s.InsideTemperature),
		number(s.StateOfCharge),
		number(s.SpaceDemand),
		number(s.HotWaterDemand),
		number(s.ElectricalDemand),
		number(s.PVGeneration),
		number(s.SolarThermal),
		number(s.Import),
		number(s.Export),
		strconv.FormatBool(s.OffPeak),
	})
}

// Flush writes buffered rows and returns the first error encountered.
func (t *TraceWriter) Flush() error {
	if t.err != nil {
		return t.err
	}
	t.cw.Flush()
	return t.cw.Error()
}
