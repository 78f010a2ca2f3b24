package dispatch

import "github.com/kilianp07/heatplan/core/model"

const (
	monocrystallineEfficiency = 0.1928
	shadingFactor             = 0.8
)

// PVGeneration returns the electrical output (kWh) of pvSize m2 of panels for
// the incident roof irradiance in kW/m2. Hybrid panels lose efficiency as the
// store they cool gets hotter.
func PVGeneration(s model.SolarOption, pvSize int, incident, upper, lower float64) float64 {
	eff := monocrystallineEfficiency
	if s == model.SolarPVThermalHybrid {
		eff = 14.7 * (1 - 0.0045*((upper+lower)/2-25)) / 100
	}
	return float64(pvSize) * eff * incident * shadingFactor
}

// collectorCurve returns the efficiency coefficients of the thermal collector.
func collectorCurve(s model.SolarOption) quadratic {
	switch s {
	case model.SolarFlatPlate, model.SolarPVFlatPlate:
		return quadratic{-0.000038, -0.0035, 0.78}
	case model.SolarPVThermalHybrid:
		return quadratic{-0.0000176, -0.003325, 0.726}
	case model.SolarEvacuatedTube, model.SolarPVEvacuatedTube:
		return quadratic{-0.00002, -0.0009, 0.625}
	default:
		panic(unreachable("solar thermal option", s))
	}
}

// SolarThermalGeneration returns the heat (kWh) collected by size m2 of
// collectors. deltaT is the mean store temperature minus the outside temperature.
func SolarThermalGeneration(s model.SolarOption, size int, incident, deltaT float64) float64 {
	if !s.HasSolarThermal() || incident == 0 {
		return 0
	}
	k := collectorCurve(s)
	g := shadingFactor * float64(size) * (k.a*deltaT*deltaT + k.b*deltaT + k.c*incident)
	if g < 0 {
		return 0
	}
	return g
}
