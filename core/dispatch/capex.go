package dispatch

import (
	"math"

	"github.com/kilianp07/heatplan/core/model"
)

// HeatSourceCapex returns the installed cost (GBP) of the heat source for the
// given rated thermal power in kW.
func HeatSourceCapex(h model.HeatOption, thermal float64) float64 {
	switch h {
	case model.ResistiveHeating:
		return 1000 + 100
	case model.AirSourceHeatPump:
		return (200+4750/math.Pow(thermal, 1.25))*thermal + 1500
	case model.GroundSourceHeatPump:
		return (200+4750/math.Pow(thermal, 1.25))*thermal + 800*thermal
	default:
		panic(unreachable("heat option", h))
	}
}

// PVCapex returns the cost of pvSize m2 of stand-alone panels at 0.2 kWp/m2,
// with a cheaper rate per kWp from 4 kWp. Hybrid panels are priced as thermal
// collectors.
func PVCapex(s model.SolarOption, pvSize int) float64 {
	switch s {
	case model.SolarPV, model.SolarPVFlatPlate, model.SolarPVEvacuatedTube:
		kwp := float64(pvSize) * 0.2
		if kwp < 4 {
			return kwp * 1100
		}
		return kwp * 900
	default:
		return 0
	}
}

// SolarThermalCapex returns the collector and fittings cost for size m2.
func SolarThermalCapex(s model.SolarOption, size int) float64 {
	area := float64(size)
	switch s {
	case model.SolarNone, model.SolarPV:
		return 0
	case model.SolarFlatPlate, model.SolarPVFlatPlate:
		return area*(225+270/(9*1.6)) + 490 + 800 + 800
	case model.SolarPVThermalHybrid:
		return (area/1.6)*(480+270/9) + 640 + 490 + 800 + 1440
	case model.SolarEvacuatedTube, model.SolarPVEvacuatedTube:
		return area*(280+270/(9*1.6)) + 490 + 800 + 800
	default:
		panic(unreachable("solar option", s))
	}
}

// StorageCapex returns the cost of a thermal store of volume m3.
func StorageCapex(volume float64) float64 {
	return 2068.3 * math.Pow(volume, 0.553)
}

// Capex returns the total capital expenditure of a system.
func Capex(c model.Combination, thermal float64, pvSize, solarThermalSize int, volume float64) float64 {
	return HeatSourceCapex(c.Heat, thermal) +
		PVCapex(c.Solar, pvSize) +
		SolarThermalCapex(c.Solar, solarThermalSize) +
		StorageCapex(volume)
}
