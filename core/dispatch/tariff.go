package dispatch

import "github.com/kilianp07/heatplan/core/model"

// agileCheapBelow is the Agile price (p/kWh) under which an hour counts as off-peak.
const agileCheapBelow = 9.0

// Rate is the electricity pricing that applies to one hour.
type Rate struct {
	Import  float64 // GBP per imported kWh
	Export  float64 // GBP credited per exported kWh
	OffPeak bool
}

// RateAt returns the import price, export credit and cost bucket of tariff t
// at hour of day. agile is the hour's Agile price in p/kWh.
func RateAt(t model.Tariff, hour int, agile float64) Rate {
	switch t {
	case model.FlatRate:
		return peakRate(0.163, 0.035)
	case model.Economy7:
		if hour < 6 || hour == 23 {
			return offPeakRate(0.095, 0.035)
		}
		return peakRate(0.199, 0.035)
	case model.BulbSmart:
		if 15 < hour && hour < 19 {
			return peakRate(0.2529, 0.035)
		}
		return offPeakRate(0.1279, 0.035)
	case model.OctopusGo:
		if hour < 5 {
			return offPeakRate(0.05, 0.03)
		}
		return peakRate(0.1533, 0.03)
	case model.OctopusAgile:
		r := Rate{Import: agile / 100, Export: (agile/100 + 0.055) / 2}
		r.OffPeak = agile < agileCheapBelow
		return r
	default:
		panic(unreachable("tariff", t))
	}
}

// Export is credited at the mean of the import price and the export tariff.
func peakRate(price, export float64) Rate {
	return Rate{Import: price, Export: (price + export) / 2}
}

func offPeakRate(price, export float64) Rate {
	return Rate{Import: price, Export: (price + export) / 2, OffPeak: true}
}

// ChargingWindow reports whether the store may be topped up from the grid at hour.
func ChargingWindow(t model.Tariff, hour int, agile float64) bool {
	switch t {
	case model.FlatRate, model.BulbSmart:
		return 12 < hour && hour < 16
	case model.Economy7:
		return hour == 23 || hour < 6
	case model.OctopusGo:
		return hour < 5
	case model.OctopusAgile:
		return agile < agileCheapBelow
	default:
		panic(unreachable("tariff", t))
	}
}
