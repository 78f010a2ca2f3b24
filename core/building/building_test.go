package building

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/heatplan/core/climate"
	"github.com/kilianp07/heatplan/core/model"
	"github.com/kilianp07/heatplan/test/util"
)

func coventry(epc float64) HouseSpec {
	return HouseSpec{
		Postcode:              "CV4 7AL",
		Latitude:              52.3833,
		Longitude:             -1.5833,
		Occupants:             2,
		HouseSize:             100,
		ThermostatTemperature: 20,
		EPCSpaceHeating:       epc,
		TESVolumeMax:          0.5,
	}
}

func TestPrepare(t *testing.T) {
	b, err := Prepare(coventry(3000), util.ConstantWeather(0, 0, 10))
	require.NoError(t, err)

	p := b.Profile
	assert.Equal(t, 6, b.Region)
	assert.InDelta(t, 250*100.0/3600, p.HeatCapacity, 1e-12)
	assert.InDelta(t, 0.12, p.BodyHeatGain, 1e-12)
	assert.GreaterOrEqual(t, p.ThermalTransmittance, transmittanceMin)
	assert.LessOrEqual(t, p.ThermalTransmittance, transmittanceMax)
	assert.Greater(t, b.OptimisedEPCDemand, 0.0)

	assert.Equal(t, 18.0, p.ResistiveSchedule[0])
	assert.Equal(t, 20.0, p.ResistiveSchedule[12])
	assert.Equal(t, 18.0, p.ResistiveSchedule[23])
	assert.Equal(t, 20.0, p.HeatPumpSchedule[3])
	assert.Equal(t, coldWaterBands[1].temps, p.ColdWater)

	for _, d := range []model.DemandSummary{p.ResistiveDemand, p.HeatPumpDemand} {
		assert.InDelta(t, d.Total, d.Space+d.HotWater, 1e-6)
		assert.Greater(t, d.PeakHourly, 0.0)
		assert.Less(t, d.PeakHourly, d.Total)
	}
	assert.InDelta(t, p.ResistiveDemand.HotWater, p.HeatPumpDemand.HotWater, 1e-9)
	// the overnight setback saves space heating
	assert.Greater(t, p.HeatPumpDemand.Space, p.ResistiveDemand.Space)
}

func TestPrepare_TransmittanceFollowsEPC(t *testing.T) {
	w := util.ConstantWeather(5, 100, 10)
	low, err := Prepare(coventry(3000), w)
	require.NoError(t, err)
	high, err := Prepare(coventry(8000), w)
	require.NoError(t, err)
	assert.Greater(t, high.Profile.ThermalTransmittance, low.Profile.ThermalTransmittance)
	assert.Greater(t, high.OptimisedEPCDemand, low.OptimisedEPCDemand)
}

func TestCalibrate_StopsWhenDifferenceGrows(t *testing.T) {
	b, err := Prepare(coventry(3000), util.ConstantWeather(0, 0, 10))
	require.NoError(t, err)
	epc, err := climate.EPCClimate(b.Region)
	require.NoError(t, err)

	// no transmittance gets closer to 1 kWh than zero demand does
	u, demand := Calibrate(b.Profile, epc, EPCBodyGain(100), 1)
	assert.Equal(t, transmittanceMin, u)
	assert.Zero(t, demand)
}

func TestPrepare_Errors(t *testing.T) {
	w := util.ConstantWeather(0, 0, 10)

	bad := coventry(3000)
	bad.HouseSize = 0
	_, err := Prepare(bad, w)
	assert.ErrorIs(t, err, ErrInvalidHouse)

	bad = coventry(3000)
	bad.Postcode = "QQ1 1AA"
	_, err = Prepare(bad, w)
	assert.ErrorIs(t, err, climate.ErrPostcodeNotFound)

	w.AgilePrice = w.AgilePrice[:100]
	_, err = Prepare(coventry(3000), w)
	assert.ErrorIs(t, err, model.ErrWeatherLength)
}

func TestHelpers(t *testing.T) {
	assert.InDelta(t, 101.1, DailyHotWaterVolume(2), 1e-9)
	assert.Equal(t, 15.0, GroundTemperature(50))
	assert.InDelta(t, 11.0, GroundTemperature(59), 1e-12)
	assert.Greater(t, EPCBodyGain(100), EPCBodyGain(40))

	s := south.ratios(52, roofTilt)
	n := north.ratios(52, windowTilt)
	// south facing surfaces see more sun than north facing ones in winter
	assert.Greater(t, s[0], n[0])
}

func TestPrepare_ColdestTemperature(t *testing.T) {
	w := util.ConstantWeather(0, 0, 10)

	b, err := Prepare(coventry(3000), w)
	require.NoError(t, err)
	want, ok := climate.ColdestTemperature(52.3833, -1.5833)
	require.True(t, ok)
	assert.False(t, b.ColdestDefaulted)
	assert.Equal(t, want, b.Profile.ColdestTemperature)

	offshore := coventry(3000)
	offshore.Latitude, offshore.Longitude = 45, 10
	b, err = Prepare(offshore, w)
	require.NoError(t, err)
	assert.True(t, b.ColdestDefaulted)
	assert.Zero(t, b.Profile.ColdestTemperature)
}
