package dispatch

const (
	// DefaultDiscountRate is the HM Treasury 3.5% rate expressed as a growth factor.
	DefaultDiscountRate = 1.035
	DefaultNPCYears     = 20
)

// Emission factors in gCO2e/kWh.
const (
	SolarThermalEmissions = 22.5
	PVEmissions           = 75.0
	GridEmissions         = 212.0
)

// CumulativeDiscountFactor returns sum(1/rate^y) for y in [0, years).
func CumulativeDiscountFactor(rate float64, years int) float64 {
	current := 1.0
	total := 0.0
	for y := 0; y < years; y++ {
		total += 1 / current
		current *= rate
	}
	return total
}

// NetPresentCost discounts a constant annual opex over the horizon.
func NetPresentCost(capex, opex, discountFactor float64) float64 {
	return capex + opex*discountFactor
}
