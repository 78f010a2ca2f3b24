package dispatch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kilianp07/heatplan/core/model"
	"github.com/kilianp07/heatplan/test/util"
)

func TestCumulativeDiscountFactor(t *testing.T) {
	var want float64
	for y := 0; y < 20; y++ {
		want += 1 / math.Pow(1.035, float64(y))
	}
	assert.InDelta(t, want, CumulativeDiscountFactor(1.035, 20), 1e-9)
	assert.Equal(t, 1.0, CumulativeDiscountFactor(1.035, 1))
	assert.Zero(t, CumulativeDiscountFactor(1.035, 0))

	// the shared fixtures carry their own copy of the default factor
	assert.InDelta(t, CumulativeDiscountFactor(DefaultDiscountRate, DefaultNPCYears), util.DiscountFactor(), 1e-12)
	assert.InDelta(t, util.DiscountFactor(), util.SmallHouse().DiscountFactor, 1e-12)
}

func TestTankRegimes(t *testing.T) {
	tk := newTank(0.2, 51)
	assert.InDelta(t, 0.2*1000*4.18*11/3600, tk.full, 1e-12)
	assert.Less(t, tk.full, tk.boost)
	assert.Less(t, tk.boost, tk.max)

	up, low, h := tk.regime(tk.full/2, 12)
	assert.Equal(t, 51.0, up)
	assert.Equal(t, 12.0, low)
	assert.InDelta(t, 0.5, h, 1e-12)

	up, low, _ = tk.regime((tk.full+tk.boost)/2, 12)
	assert.Equal(t, 60.0, up)
	assert.Equal(t, 51.0, low)

	up, low, h = tk.regime(tk.max, 12)
	assert.Equal(t, 95.0, up)
	assert.Equal(t, 60.0, low)
	assert.InDelta(t, 1, h, 1e-12)

	// a hot store in a cold room loses heat
	assert.Greater(t, tk.losses(95, 60, 1, 20), 0.0)
}

func TestRateAt(t *testing.T) {
	cases := []struct {
		tariff  model.Tariff
		hour    int
		agile   float64
		price   float64
		offPeak bool
	}{
		{model.FlatRate, 3, 0, 0.163, false},
		{model.Economy7, 23, 0, 0.095, true},
		{model.Economy7, 12, 0, 0.199, false},
		{model.BulbSmart, 17, 0, 0.2529, false},
		{model.BulbSmart, 2, 0, 0.1279, true},
		{model.OctopusGo, 4, 0, 0.05, true},
		{model.OctopusGo, 5, 0, 0.1533, false},
		{model.OctopusAgile, 9, 8.5, 0.085, true},
		{model.OctopusAgile, 9, 20, 0.2, false},
	}
	for _, c := range cases {
		r := RateAt(c.tariff, c.hour, c.agile)
		assert.InDelta(t, c.price, r.Import, 1e-12, "%s@%d", c.tariff, c.hour)
		assert.Equal(t, c.offPeak, r.OffPeak, "%s@%d", c.tariff, c.hour)
		assert.Less(t, r.Export, r.Import+0.055)
	}
}

func TestChargingWindow(t *testing.T) {
	assert.True(t, ChargingWindow(model.FlatRate, 13, 0))
	assert.False(t, ChargingWindow(model.FlatRate, 16, 0))
	assert.True(t, ChargingWindow(model.Economy7, 23, 0))
	assert.False(t, ChargingWindow(model.OctopusGo, 5, 0))
	assert.True(t, ChargingWindow(model.OctopusAgile, 18, 3))
}

func TestElectricalPower_Clamped(t *testing.T) {
	house := util.SmallHouseProfile()
	assert.Equal(t, 4.0, ElectricalPower(model.ResistiveHeating, house))

	house.ResistiveDemand.PeakHourly = 12
	assert.Equal(t, maxElectricalPower, ElectricalPower(model.ResistiveHeating, house))

	ashp := ElectricalPower(model.AirSourceHeatPump, house)
	worst := airSourceCOP.at(house.HotWaterTemperature - house.ColdestTemperature)
	assert.InDelta(t, house.HeatPumpDemand.PeakHourly/worst, ashp, 1e-12)
	assert.Greater(t, ashp, 4/ReferenceCOP(model.AirSourceHeatPump))
	gshp := ElectricalPower(model.GroundSourceHeatPump, house)
	assert.InDelta(t, 6/ReferenceCOP(model.GroundSourceHeatPump), gshp, 1e-12)
}

func TestCOP_HeatPumpsBeatResistive(t *testing.T) {
	cur, boost := COP(model.AirSourceHeatPump, 51, 7, 11)
	assert.Greater(t, cur, 1.0)
	assert.Less(t, boost, cur)
	cur, boost = COP(model.ResistiveHeating, 51, 7, 11)
	assert.Equal(t, 1.0, cur)
	assert.Equal(t, 1.0, boost)
}

func TestSolarGeneration(t *testing.T) {
	assert.Zero(t, SolarThermalGeneration(model.SolarFlatPlate, 10, 0, 30))
	assert.Zero(t, SolarThermalGeneration(model.SolarPV, 10, 0.8, 30))
	assert.Zero(t, SolarThermalGeneration(model.SolarEvacuatedTube, 10, 0.01, 200))
	assert.Greater(t, SolarThermalGeneration(model.SolarEvacuatedTube, 10, 0.8, 20), 0.0)

	assert.InDelta(t, 10*monocrystallineEfficiency*0.5*0.8, PVGeneration(model.SolarPV, 10, 0.5, 51, 10), 1e-12)
	hot := PVGeneration(model.SolarPVThermalHybrid, 10, 0.5, 95, 60)
	cold := PVGeneration(model.SolarPVThermalHybrid, 10, 0.5, 51, 10)
	assert.Less(t, hot, cold)
}

func TestSizing(t *testing.T) {
	assert.Equal(t, 14, SolarMaximum(60))
	assert.Equal(t, 1, SolarRange(model.SolarNone, 14))
	assert.Equal(t, 7, SolarRange(model.SolarPV, 14))
	assert.Equal(t, 6, SolarRange(model.SolarPVFlatPlate, 14))
	assert.Equal(t, -1, SolarRange(model.SolarPVFlatPlate, 0))

	pv, st := SolarSizes(model.SolarPVFlatPlate, 2, 14)
	assert.Equal(t, 6, st)
	assert.Equal(t, 8, pv)
	pv, st = SolarSizes(model.SolarPVThermalHybrid, 0, 14)
	assert.Equal(t, 2, pv)
	assert.Equal(t, 2, st)
	pv, st = SolarSizes(model.SolarNone, 0, 14)
	assert.Zero(t, pv+st)

	assert.Equal(t, 30, StorageRange(3.0))
	assert.Equal(t, 1, StorageRange(0.1))
	assert.InDelta(t, 0.3, StorageVolume(2), 1e-12)
}
