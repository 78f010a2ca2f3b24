package dispatch

import "math"

const (
	// storeLossCoefficient is the linearised heat loss of the store walls in kW/m2K.
	storeLossCoefficient = 1.30 / 1000
	storeMinUsefulTemp   = 40.0
	storeBoostTemp       = 60.0
	storeMaxTemp         = 95.0
	// storeMinVolume is the volume of hot water (litres) always kept available.
	storeMinVolume = 10.0
)

// tank holds the charge thresholds and geometry of a cylindrical store whose
// height is twice its radius.
type tank struct {
	hotWater float64
	full     float64 // kWh at the nominal hot water temperature
	boost    float64 // kWh at the PV boost temperature
	max      float64 // kWh at the absolute ceiling
	min      float64 // kWh floor kept regardless of tariff
	wall     float64 // pi * D^2, lateral area scale
	lid      float64 // pi * r^2
}

func newTank(volume, hotWater float64) tank {
	r := math.Cbrt(volume / (2 * math.Pi))
	charge := func(top float64) float64 {
		return volume * 1000 * 4.18 * (top - storeMinUsefulTemp) / 3600
	}
	return tank{
		hotWater: hotWater,
		full:     charge(hotWater),
		boost:    charge(storeBoostTemp),
		max:      charge(storeMaxTemp),
		min:      storeMinVolume * 4.18 * (hotWater - 10) / 3600,
		wall:     math.Pi * 2 * r * 2 * r,
		lid:      math.Pi * r * r,
	}
}

// regime returns the upper and lower layer temperatures and the height
// fraction of the upper layer for the given charge.
func (t tank) regime(soc, coldWater float64) (upper, lower, height float64) {
	switch {
	case soc <= t.full:
		return t.hotWater, coldWater, fraction(soc, t.full)
	case soc <= t.boost:
		return storeBoostTemp, t.hotWater, fraction(soc-t.full, t.boost-t.full)
	default:
		return storeMaxTemp, storeBoostTemp, fraction(soc-t.boost, t.max-t.boost)
	}
}

// losses returns the heat (kWh) lost by the store to a room at inside degC over one hour.
func (t tank) losses(upper, lower, height, inside float64) float64 {
	up := (upper - inside) * storeLossCoefficient * (t.wall*height + t.lid)
	low := (lower - inside) * storeLossCoefficient * (t.wall*(1-height) + t.lid)
	return up + low
}

func fraction(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}
