package scheduler

import (
	"github.com/kilianp07/heatplan/core/dispatch"
	"github.com/kilianp07/heatplan/core/model"
)

// Plan is the sizing grid of one combination.
type Plan struct {
	Combination  model.Combination
	SolarMax     int // m2 of roof available for solar
	SolarRange   int
	StorageRange int
}

// NewPlan derives the grid of c for a house of houseSize m2 and stores up to
// maxVolume m3.
func NewPlan(c model.Combination, houseSize, maxVolume float64) Plan {
	solarMax := dispatch.SolarMaximum(houseSize)
	return Plan{
		Combination:  c,
		SolarMax:     solarMax,
		SolarRange:   dispatch.SolarRange(c.Solar, solarMax),
		StorageRange: dispatch.StorageRange(maxVolume),
	}
}

// Valid reports whether the grid holds at least one point.
func (p Plan) Valid() bool {
	return p.SolarRange > 0 && p.StorageRange > 0
}

// Cells returns the number of grid points.
func (p Plan) Cells() int {
	if !p.Valid() {
		return 0
	}
	return p.SolarRange * p.StorageRange
}

// Sizes maps a grid point to PV area, collector area and store volume.
func (p Plan) Sizes(pt model.SizingPoint) (pvSize, solarThermalSize int, storageVolume float64) {
	pv, st := dispatch.SolarSizes(p.Combination.Solar, pt.Solar, p.SolarMax)
	return pv, st, dispatch.StorageVolume(pt.Storage)
}
