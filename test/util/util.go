// Package util provides fixtures shared across tests.
//
// SmallHouse returns annual inputs for a 60 m2 house with constant weather so
// that simulated demand can be computed by hand. SunnyHouse adds a daily
// irradiance block for exercising solar generation.
package util

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"

	"github.com/kilianp07/heatplan/core/model"
	"github.com/kilianp07/heatplan/infra/weather"
)

// Fixture constants of SmallHouse.
const (
	HouseSize      = 60.0
	Transmittance  = 1.0
	Thermostat     = 20.0
	Outside        = 0.0
	BodyHeatGain   = 0.12
	HotWaterLitres = 100.0
	ColdWater      = 10.0
	HotWater       = 51.0
	AgilePrice     = 10.0
	PeakHourly     = 3.0
	GroundTemp     = 11.0
	ColdestOutside = -2.0
)

// DiscountFactor is the 20 year cumulative factor at 3.5%, the simulator
// default. The fixtures cannot import core/dispatch, whose own tests use them.
func DiscountFactor() float64 {
	total, growth := 0.0, 1.0
	for y := 0; y < 20; y++ {
		total += 1 / growth
		growth *= 1.035
	}
	return total
}

// SmallHouse returns inputs with constant outside temperature and no sun.
func SmallHouse() model.AnnualInputs {
	return model.AnnualInputs{
		House:          SmallHouseProfile(),
		Weather:        ConstantWeather(Outside, 0, AgilePrice),
		DiscountFactor: DiscountFactor(),
	}
}

// SmallHouseProfile returns the building side of SmallHouse.
func SmallHouseProfile() model.HouseProfile {
	p := model.HouseProfile{
		HouseSize:             HouseSize,
		HeatCapacity:          250 * HouseSize / 3600,
		ThermalTransmittance:  Transmittance,
		BodyHeatGain:          BodyHeatGain,
		SolarGainFactor:       (HouseSize * 0.15 / 2) * 0.77 * 0.7 * 0.76 * 0.9 / 1000,
		HotWaterVolume:        HotWaterLitres,
		HotWaterTemperature:   HotWater,
		ThermostatTemperature: Thermostat,
		GroundTemperature:     GroundTemp,
		ColdestTemperature:    ColdestOutside,
		ResistiveDemand:       model.DemandSummary{PeakHourly: PeakHourly},
		HeatPumpDemand:        model.DemandSummary{PeakHourly: PeakHourly},
	}
	for h := 0; h < 24; h++ {
		p.ResistiveSchedule[h] = Thermostat
		p.HeatPumpSchedule[h] = Thermostat
		p.HotWaterHourly[h] = 1.0 / 24
	}
	for m := 0; m < 12; m++ {
		p.HotWaterMonthly[m] = 1
		p.ColdWater[m] = ColdWater
		p.SolarRatioNorth[m] = 0.2
		p.SolarRatioSouth[m] = 0.8
		p.RoofRatioSouth[m] = 1
	}
	return p
}

// ConstantWeather returns a year of identical hours.
func ConstantWeather(outside, irradiance, agile float64) model.Weather {
	w := model.Weather{
		OutsideTemperature: make([]float64, model.HoursPerYear),
		SolarIrradiance:    make([]float64, model.HoursPerYear),
		AgilePrice:         make([]float64, model.HoursPerYear),
	}
	for i := 0; i < model.HoursPerYear; i++ {
		w.OutsideTemperature[i] = outside
		w.SolarIrradiance[i] = irradiance
		w.AgilePrice[i] = agile
	}
	return w
}

// SunnyHouse is SmallHouse at 15 degC with 800 W/m2 between 10:00 and 15:00
// and a cheap Agile price overnight.
func SunnyHouse() model.AnnualInputs {
	in := SmallHouse()
	in.Weather = ConstantWeather(15, 0, 15)
	for i := 0; i < model.HoursPerYear; i++ {
		hour := i % 24
		if hour >= 10 && hour <= 15 {
			in.Weather.SolarIrradiance[i] = 800
		}
		if hour < 4 {
			in.Weather.AgilePrice[i] = 5
		}
	}
	return in
}

// WriteAssets lays w out under dir the way weather.Loader expects it for the
// grid point nearest to (lat, lon).
func WriteAssets(dir string, lat, lon float64, w model.Weather) error {
	name := weather.SeriesFile(lat, lon)
	files := map[string][]float64{
		filepath.Join(dir, "outside_temps", name):     w.OutsideTemperature,
		filepath.Join(dir, "solar_irradiances", name): w.SolarIrradiance,
		filepath.Join(dir, "agile_tariff.csv"):        w.AgilePrice,
	}
	for path, series := range files {
		if err := writeSeries(path, series); err != nil {
			return err
		}
	}
	return nil
}

func writeSeries(path string, series []float64) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	for _, v := range series {
		bw.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
