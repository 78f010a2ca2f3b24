package dispatch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/heatplan/core/model"
	"github.com/kilianp07/heatplan/test/util"
)

var resistiveNoSolar = model.Combination{Heat: model.ResistiveHeating, Solar: model.SolarNone}

// With no sun and a constant outside temperature every hour the heater
// replaces the fabric loss minus body heat, plus hot water. Store standing
// losses end up inside the house, so the only difference from the hand
// computed figure is the change in store charge over the year.
func TestEvaluate_ResistiveFlatRateScenario(t *testing.T) {
	in := util.SmallHouse()
	sim := NewSimulator(in)
	res := sim.Evaluate(Request{Combination: resistiveNoSolar, StorageVolume: 0.1, Tariff: model.FlatRate})

	house := in.House
	hourlyFabric := house.HouseSize*house.ThermalTransmittance/1000*(util.Thermostat-util.Outside) - house.BodyHeatGain
	var demand float64
	for month, days := range model.DaysInMonth {
		for d := 0; d < days; d++ {
			for h := 0; h < 24; h++ {
				demand += hourlyFabric + house.HotWaterDemand(month, h)
			}
		}
	}
	capex := 1100 + 2068.3*math.Pow(0.1, 0.553)
	reference := capex + in.DiscountFactor*0.163*demand

	assert.InDelta(t, capex, res.Capex, 1e-9)
	assert.Zero(t, res.OpexOffPeak)
	assert.InEpsilon(t, reference, res.NPC, 0.01)
	assert.InEpsilon(t, 0.163*demand, res.Opex(), 0.01)
	assert.InEpsilon(t, demand*GridEmissions, res.Emissions, 0.01)
}

func TestEvaluate_Deterministic(t *testing.T) {
	sim := NewSimulator(util.SunnyHouse())
	req := Request{
		Combination:      model.Combination{Heat: model.AirSourceHeatPump, Solar: model.SolarPVThermalHybrid},
		PVSize:           8,
		SolarThermalSize: 8,
		StorageVolume:    0.5,
		Tariff:           model.OctopusAgile,
	}
	first := sim.Evaluate(req)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, sim.Evaluate(req))
	}
	assert.Equal(t, first, NewSimulator(util.SunnyHouse()).Evaluate(req))
}

func TestEvaluate_CapexIncreasesWithStorage(t *testing.T) {
	sim := NewSimulator(util.SmallHouse())
	for _, c := range []model.Combination{
		resistiveNoSolar,
		{Heat: model.GroundSourceHeatPump, Solar: model.SolarPVEvacuatedTube},
	} {
		prev := math.Inf(-1)
		for i := 0; i < 10; i++ {
			res := sim.Evaluate(Request{Combination: c, PVSize: 4, SolarThermalSize: 4, StorageVolume: StorageVolume(i), Tariff: model.Economy7})
			assert.Greater(t, res.Capex, prev, "%s volume index %d", c, i)
			prev = res.Capex
		}
	}
}

func TestCapex_MonotonicForEveryCombination(t *testing.T) {
	for _, c := range model.Combinations() {
		prev := math.Inf(-1)
		for i := 0; i < 30; i++ {
			v := Capex(c, 4, 6, 6, StorageVolume(i))
			require.Greater(t, v, prev, "%s", c)
			prev = v
		}
	}
}

func TestTrace_StorageStaysWithinBounds(t *testing.T) {
	in := util.SunnyHouse()
	sim := NewSimulator(in)
	for _, c := range []model.Combination{
		{Heat: model.ResistiveHeating, Solar: model.SolarEvacuatedTube},
		{Heat: model.AirSourceHeatPump, Solar: model.SolarPVFlatPlate},
		{Heat: model.GroundSourceHeatPump, Solar: model.SolarPVThermalHybrid},
	} {
		solarMax := SolarMaximum(in.House.HouseSize)
		pv, st := SolarSizes(c.Solar, SolarRange(c.Solar, solarMax)-1, solarMax)
		req := Request{Combination: c, PVSize: pv, SolarThermalSize: st, StorageVolume: 0.1, Tariff: model.OctopusAgile}
		store := newTank(req.StorageVolume, in.House.HotWaterTemperature)
		hours := 0
		var peakSoC float64
		res := sim.Trace(req, func(s HourState) {
			hours++
			assert.GreaterOrEqual(t, s.StateOfCharge, 0.0)
			assert.LessOrEqual(t, s.StateOfCharge, store.max)
			assert.GreaterOrEqual(t, s.Import, 0.0)
			assert.GreaterOrEqual(t, s.Export, 0.0)
			peakSoC = math.Max(peakSoC, s.StateOfCharge)
		})
		assert.Equal(t, model.HoursPerYear, hours)
		assert.Greater(t, peakSoC, store.full, "%s: collectors should push the store above nominal", c)
		assert.Equal(t, sim.Evaluate(req), res)
	}
}

func TestEvaluate_PVReducesImport(t *testing.T) {
	in := util.SunnyHouse()
	sim := NewSimulator(in)
	c := model.Combination{Heat: model.AirSourceHeatPump, Solar: model.SolarPV}
	var withoutPV, withPV float64
	sim.Trace(Request{Combination: c, StorageVolume: 0.3, Tariff: model.FlatRate}, func(s HourState) { withoutPV += s.Import })
	sim.Trace(Request{Combination: c, PVSize: 12, StorageVolume: 0.3, Tariff: model.FlatRate}, func(s HourState) { withPV += s.Import })
	assert.Less(t, withPV, withoutPV)
}

func TestEvaluate_UnknownTariffPanics(t *testing.T) {
	sim := NewSimulator(util.SmallHouse())
	assert.Panics(t, func() {
		sim.Evaluate(Request{Combination: resistiveNoSolar, StorageVolume: 0.1, Tariff: model.Tariff(42)})
	})
}
