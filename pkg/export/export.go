// Package export writes optimisation reports, cost surfaces and hourly
// traces as JSON or CSV.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kilianp07/heatplan/core/baseline"
	"github.com/kilianp07/heatplan/core/model"
)

// Report is everything written for one house.
type Report struct {
	House                string
	RunID                string
	ThermalTransmittance float64
	OptimisedEPCDemand   float64
	NPCYears             int
	ResistiveDemand      model.DemandSummary
	HeatPumpDemand       model.DemandSummary
	// Systems holds one specification per combination in model.Combinations() order.
	Systems  []model.Specification
	Baseline baseline.Systems
}

// field and object produce JSON objects with a fixed key order.
type field struct {
	key string
	val any
}

type object []field

func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(f.val)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.key, err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// fixed renders v with the given number of decimal places. Non-finite values
// become null.
func fixed(v float64, places int32) json.RawMessage {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return json.RawMessage("null")
	}
	return json.RawMessage(decimal.NewFromFloat(v).StringFixed(places))
}

func demandObject(d model.DemandSummary) object {
	return object{
		{"hot-water", fixed(d.HotWater, 0)},
		{"space", fixed(d.Space, 0)},
		{"total", fixed(d.Total, 0)},
		{"peak-hourly", fixed(d.PeakHourly, 4)},
	}
}

func systemObject(s model.Specification) any {
	if !s.Evaluated {
		return nil
	}
	return object{
		{"pv-size", s.PVSize},
		{"solar-thermal-size", s.SolarThermalSize},
		{"thermal-energy-storage-volume", fixed(s.StorageVolume, 1)},
		{"tariff", s.Tariff.String()},
		{"operational-expenditure", fixed(s.Result.Opex(), 0)},
		{"capital-expenditure", fixed(s.Result.Capex, 0)},
		{"net-present-cost", fixed(s.Result.NPC, 0)},
		{"operational-emissions", fixed(s.Result.Emissions, 0)},
	}
}

func baselineObject(s baseline.System) object {
	return object{
		{"operational-expenditure", fixed(s.Opex, 0)},
		{"capital-expenditure", fixed(s.Capex, 0)},
		{"net-present-cost", fixed(s.NPC, 0)},
		{"operational-emissions", fixed(s.Emissions, 0)},
	}
}

func namedObject(systems []baseline.System) object {
	o := make(object, 0, len(systems))
	for _, s := range systems {
		o = append(o, field{s.Name[strings.LastIndexByte(s.Name, '/')+1:], baselineObject(s)})
	}
	return o
}

// document lays the report out with heat options as the outer key and solar
// options as the inner key, followed by the heat-only systems.
func (r Report) document() object {
	systems := object{}
	for _, h := range model.HeatOptions {
		inner := object{}
		for _, s := range r.Systems {
			if s.Combination.Heat == h {
				inner = append(inner, field{s.Combination.Solar.Slug(), systemObject(s)})
			}
		}
		systems = append(systems, field{h.Slug(), inner})
	}
	systems = append(systems,
		field{"hydrogen-boiler", namedObject(r.Baseline.HydrogenBoiler)},
		field{"hydrogen-fuel-cell", namedObject(r.Baseline.HydrogenFuelCell)},
		field{r.Baseline.GasBoiler.Name, baselineObject(r.Baseline.GasBoiler)},
		field{r.Baseline.BiomassBoiler.Name, baselineObject(r.Baseline.BiomassBoiler)},
	)

	doc := object{}
	if r.House != "" {
		doc = append(doc, field{"house", r.House})
	}
	if r.RunID != "" {
		doc = append(doc, field{"run-id", r.RunID})
	}
	return append(doc,
		field{"thermal-transmittance", fixed(r.ThermalTransmittance, 2)},
		field{"optimised-epc-demand", fixed(r.OptimisedEPCDemand, 0)},
		field{"npc-years", r.NPCYears},
		field{"demand", object{
			{"boiler", demandObject(r.ResistiveDemand)},
			{"heat-pump", demandObject(r.HeatPumpDemand)},
		}},
		field{"systems", systems},
	)
}

// MarshalJSON implements json.Marshaler.
func (r Report) MarshalJSON() ([]byte, error) {
	return r.document().MarshalJSON()
}

// WriteJSON writes the report to w as one JSON document.
func WriteJSON(w io.Writer, r Report) error {
	return json.NewEncoder(w).Encode(r)
}

// WriteJSONBatch writes several reports as a JSON array.
func WriteJSONBatch(w io.Writer, reports []Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}
