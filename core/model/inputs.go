package model

import (
	"errors"
	"fmt"
)

// HoursPerYear is the length of the simulated year. Leap days are ignored.
const HoursPerYear = 8760

// DaysInMonth drives the month, day, hour iteration of the annual loop.
var DaysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// ErrWeatherLength is returned when an annual series does not hold one value per hour.
var ErrWeatherLength = errors.New("annual series must contain 8760 hourly values")

// DemandSummary aggregates annual heat demand in kWh.
type DemandSummary struct {
	Total      float64 `json:"total"`
	Space      float64 `json:"space"`
	HotWater   float64 `json:"hot_water"`
	PeakHourly float64 `json:"peak_hourly"`
}

// HouseProfile holds the building quantities consumed by the dispatch simulator.
type HouseProfile struct {
	HouseSize             float64 `json:"house_size"`            // m2
	HeatCapacity          float64 `json:"heat_capacity"`         // kWh/K
	ThermalTransmittance  float64 `json:"thermal_transmittance"` // W/m2K
	BodyHeatGain          float64 `json:"body_heat_gain"`        // kWh per hour
	SolarGainFactor       float64 `json:"solar_gain_factor"`
	HotWaterVolume        float64 `json:"hot_water_volume"` // litres per day
	HotWaterTemperature   float64 `json:"hot_water_temperature"`
	ThermostatTemperature float64 `json:"thermostat_temperature"`
	GroundTemperature     float64 `json:"ground_temperature"`
	ColdestTemperature    float64 `json:"coldest_temperature"`

	ResistiveSchedule [24]float64 `json:"resistive_schedule"`
	HeatPumpSchedule  [24]float64 `json:"heat_pump_schedule"`
	HotWaterHourly    [24]float64 `json:"hot_water_hourly"`

	HotWaterMonthly [12]float64 `json:"hot_water_monthly"`
	ColdWater       [12]float64 `json:"cold_water"`
	SolarRatioNorth [12]float64 `json:"solar_ratio_north"`
	SolarRatioSouth [12]float64 `json:"solar_ratio_south"`
	RoofRatioSouth  [12]float64 `json:"roof_ratio_south"`

	ResistiveDemand DemandSummary `json:"resistive_demand"`
	HeatPumpDemand  DemandSummary `json:"heat_pump_demand"`
}

// Schedule returns the hourly thermostat setpoints used by heat option h.
func (p HouseProfile) Schedule(h HeatOption) [24]float64 {
	if h.IsHeatPump() {
		return p.HeatPumpSchedule
	}
	return p.ResistiveSchedule
}

// HotWaterDemand returns the hot water heat demand in kWh for the given month and hour.
func (p HouseProfile) HotWaterDemand(month, hour int) float64 {
	return p.HotWaterVolume * 4.18 * (p.HotWaterTemperature - p.ColdWater[month]) / 3600 *
		p.HotWaterMonthly[month] * p.HotWaterHourly[hour]
}

// Weather holds the three hourly annual series.
type Weather struct {
	OutsideTemperature []float64 `json:"outside_temperature"` // degC
	SolarIrradiance    []float64 `json:"solar_irradiance"`    // W/m2
	AgilePrice         []float64 `json:"agile_price"`         // p/kWh
}

// Validate checks every series covers the full year.
func (w Weather) Validate() error {
	for name, s := range map[string][]float64{
		"outside_temperature": w.OutsideTemperature,
		"solar_irradiance":    w.SolarIrradiance,
		"agile_price":         w.AgilePrice,
	} {
		if len(s) != HoursPerYear {
			return fmt.Errorf("%s: %w (got %d)", name, ErrWeatherLength, len(s))
		}
	}
	return nil
}

// AnnualInputs bundles everything a dispatch evaluation reads.
type AnnualInputs struct {
	House          HouseProfile
	Weather        Weather
	DiscountFactor float64
}
