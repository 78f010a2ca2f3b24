package dispatch

import "github.com/kilianp07/heatplan/core/model"

const storageStep = 0.1 // m3

// SolarMaximum returns the roof area (m2) available for solar: a quarter of
// the roof, rounded down to an even number.
func SolarMaximum(houseSize float64) int {
	return int(houseSize/8) * 2
}

// SolarRange returns the number of solar sizing steps for option s. It can be
// zero or negative on very small roofs when PV and collectors share the area.
func SolarRange(s model.SolarOption, solarMax int) int {
	switch {
	case s == model.SolarNone:
		return 1
	case s.SharesRoof():
		return solarMax/2 - 1
	default:
		return solarMax / 2
	}
}

// SolarSizes maps a solar sizing index to PV and collector areas in m2.
func SolarSizes(s model.SolarOption, index, solarMax int) (pv, solarThermal int) {
	if s.HasSolarThermal() {
		solarThermal = index*2 + 2
	}
	switch s {
	case model.SolarPV, model.SolarPVThermalHybrid:
		pv = index*2 + 2
	case model.SolarPVFlatPlate, model.SolarPVEvacuatedTube:
		pv = solarMax - solarThermal
	}
	return pv, solarThermal
}

// StorageRange returns the number of storage sizes up to maxVolume m3.
func StorageRange(maxVolume float64) int {
	return int((maxVolume + storageStep/10) / storageStep)
}

// StorageVolume maps a storage index to a volume in m3.
func StorageVolume(index int) float64 {
	return storageStep + float64(index)*storageStep
}
