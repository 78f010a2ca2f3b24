package building

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/kilianp07/heatplan/core/climate"
	"github.com/kilianp07/heatplan/core/model"
)

const (
	transmittanceMin  = 0.5
	transmittanceMax  = 3.0
	transmittanceStep = 0.01
)

// Calibrate sweeps the thermal transmittance upward from its minimum and
// returns the first value whose simulated EPC space heating demand is closest
// to target, together with that demand. The sweep stops as soon as the
// difference starts growing.
func Calibrate(p model.HouseProfile, epc climate.EPC, bodyGain, target float64) (u, demand float64) {
	u = transmittanceMin
	span := (transmittanceMax - transmittanceMin + transmittanceStep/10) / transmittanceStep
	steps := int(span)

	var gainsNorth, gainsSouth [12]float64
	for m := range gainsNorth {
		gainsNorth[m] = epc.SolarIrradiances[m] * p.SolarRatioNorth[m] * p.SolarGainFactor
		gainsSouth[m] = epc.SolarIrradiances[m] * p.SolarRatioSouth[m] * p.SolarGainFactor
	}

	for i := 0; i < steps; i++ {
		candidate := transmittanceMin + transmittanceStep*float64(i)
		d := epcDemand(p, epc.OutsideTemperatures, gainsNorth, gainsSouth, bodyGain, candidate)
		if math.Abs(target-d) >= math.Abs(target-demand) {
			break
		}
		u, demand = candidate, d
	}
	return u, demand
}

func epcDemand(p model.HouseProfile, outside, gainsNorth, gainsSouth [12]float64, bodyGain, u float64) float64 {
	inside := 20.0
	var demand float64
	for month, days := range model.DaysInMonth {
		for day := 0; day < days; day++ {
			profile := &calibrationWeekday
			switch {
			case month >= 5 && month <= 8:
				profile = &calibrationSummer
			case day%7 >= 5:
				profile = &calibrationWeekend
			}
			for hour := 0; hour < 24; hour++ {
				loss := p.HouseSize * u * (inside - outside[month]) / 1000
				inside += (-loss + gainsSouth[month] + gainsNorth[month] + bodyGain) / p.HeatCapacity
				if want := profile[hour]; inside < want {
					demand += (want - inside) * p.HeatCapacity / boilerEfficiency
					inside = want
				}
			}
		}
	}
	return demand
}

// Demand simulates an ideally heated house following schedule over weather
// and summarises the annual heat demand.
func Demand(p model.HouseProfile, schedule [24]float64, weather model.Weather) model.DemandSummary {
	hourly := make([]float64, 0, model.HoursPerYear)
	hotWater := make([]float64, 0, model.HoursPerYear)
	inside := p.ThermostatTemperature
	lossFactor := p.HouseSize * p.ThermalTransmittance / 1000

	h := 0
	for month, days := range model.DaysInMonth {
		for day := 0; day < days; day++ {
			for hour := 0; hour < 24; hour++ {
				irradiance := weather.SolarIrradiance[h]
				gains := irradiance * (p.SolarRatioNorth[month] + p.SolarRatioSouth[month]) * p.SolarGainFactor
				inside += (-lossFactor*(inside-weather.OutsideTemperature[h]) + gains + p.BodyHeatGain) / p.HeatCapacity

				var space float64
				if inside < schedule[hour] {
					space = (schedule[hour] - inside) * p.HeatCapacity
					inside = schedule[hour]
				}
				hw := p.HotWaterDemand(month, hour)
				hourly = append(hourly, space+hw)
				hotWater = append(hotWater, hw)
				h++
			}
		}
	}

	total := floats.Sum(hourly)
	hw := floats.Sum(hotWater)
	return model.DemandSummary{
		Total:      total,
		Space:      total - hw,
		HotWater:   hw,
		PeakHourly: floats.Max(hourly),
	}
}
