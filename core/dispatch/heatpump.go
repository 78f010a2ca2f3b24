package dispatch

import (
	"fmt"

	"github.com/kilianp07/heatplan/core/model"
)

// quadratic is a*x^2 + b*x + c.
type quadratic struct{ a, b, c float64 }

func (q quadratic) at(x float64) float64 { return q.a*x*x + q.b*x + q.c }

var (
	// COP fits against the temperature lift.
	airSourceCOP    = quadratic{0.000630, -0.121, 6.81}
	groundSourceCOP = quadratic{0.000734, -0.150, 8.77}
)

const maxElectricalPower = 7.0 // kW, typical domestic ceiling

func unreachable(what string, v any) string {
	return fmt.Sprintf("unreachable: unmatched %s %v", what, v)
}

// ReferenceCOP returns the rated COP used to size the heat source: 35 degC
// flow at 7 degC air or 0 degC ground.
func ReferenceCOP(h model.HeatOption) float64 {
	switch h {
	case model.ResistiveHeating:
		return 1
	case model.AirSourceHeatPump:
		return airSourceCOP.at(35 - 7)
	case model.GroundSourceHeatPump:
		return groundSourceCOP.at(35)
	default:
		panic(unreachable("heat option", h))
	}
}

// COP returns the hourly coefficient of performance when heating to the hot
// water temperature and when boosting the store to 60 degC.
func COP(h model.HeatOption, hotWater, outside, ground float64) (current, boost float64) {
	switch h {
	case model.ResistiveHeating:
		return 1, 1
	case model.AirSourceHeatPump:
		return airSourceCOP.at(hotWater - outside), airSourceCOP.at(storeBoostTemp - outside)
	case model.GroundSourceHeatPump:
		return groundSourceCOP.at(hotWater - ground), groundSourceCOP.at(storeBoostTemp - ground)
	default:
		panic(unreachable("heat option", h))
	}
}

// ElectricalPower sizes the heat source in kW of electrical input so that it
// covers the peak hourly demand at the worst COP of the year.
func ElectricalPower(h model.HeatOption, house model.HouseProfile) float64 {
	ref := ReferenceCOP(h)
	switch h {
	case model.ResistiveHeating:
		return clamp(house.ResistiveDemand.PeakHourly, 4/ref, maxElectricalPower)
	case model.AirSourceHeatPump:
		worst := airSourceCOP.at(house.HotWaterTemperature - house.ColdestTemperature)
		return clamp(house.HeatPumpDemand.PeakHourly/worst, 4/ref, maxElectricalPower)
	case model.GroundSourceHeatPump:
		worst := groundSourceCOP.at(house.HotWaterTemperature - house.GroundTemperature)
		return clamp(house.HeatPumpDemand.PeakHourly/worst, 6/ref, maxElectricalPower)
	default:
		panic(unreachable("heat option", h))
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
