// Package baseline prices the heat-only reference systems reported next to
// the optimised electric systems: hydrogen boilers and fuel cells, a gas
// boiler and a biomass boiler.
package baseline

import (
	"math"

	"github.com/kilianp07/heatplan/core/dispatch"
	"github.com/kilianp07/heatplan/core/model"
)

const (
	boilerEfficiency   = 0.9
	fuelCellEfficiency = 0.94
	fuelCellLifetime   = 10 // years
)

// Fuel is a hydrogen production route.
type Fuel struct {
	Name      string
	Price     float64 // GBP/kWh
	Emissions float64 // gCO2e/kWh
}

// Hydrogen production routes, cheapest first.
var Hydrogen = []Fuel{
	{Name: "grey", Price: 0.049, Emissions: 382},
	{Name: "blue", Price: 0.093, Emissions: 60},
	{Name: "green", Price: 0.184, Emissions: 1875 * dispatch.GridEmissions / 1000},
}

// System is the annual cost and emissions of a heat-only system.
type System struct {
	Name      string  `json:"-"`
	Opex      float64 `json:"operational-expenditure"`
	Capex     float64 `json:"capital-expenditure"`
	NPC       float64 `json:"net-present-cost"`
	Emissions float64 `json:"operational-emissions"`
}

// Systems groups every reference system of one house.
type Systems struct {
	HydrogenBoiler   []System
	HydrogenFuelCell []System
	GasBoiler        System
	BiomassBoiler    System
}

// All returns the systems in report order.
func (s Systems) All() []System {
	out := make([]System, 0, len(s.HydrogenBoiler)+len(s.HydrogenFuelCell)+2)
	out = append(out, s.HydrogenBoiler...)
	out = append(out, s.HydrogenFuelCell...)
	return append(out, s.GasBoiler, s.BiomassBoiler)
}

func build(name string, price, demand, capex, emissions, discountFactor float64) System {
	opex := demand * price
	return System{
		Name:      name,
		Opex:      opex,
		Capex:     capex,
		NPC:       dispatch.NetPresentCost(capex, opex, discountFactor),
		Emissions: demand * emissions,
	}
}

// Evaluate prices the reference systems. Boilers follow the resistive
// (set back) schedule, fuel cells the heat pump one. epcSpaceHeating scales
// boiler capex.
func Evaluate(house model.HouseProfile, epcSpaceHeating, discountFactor float64, npcYears int) Systems {
	boilerDemand := house.ResistiveDemand.Total / boilerEfficiency
	fuelCellDemand := house.HeatPumpDemand.Total / fuelCellEfficiency

	boilerCapex := math.Min(2000+epcSpaceHeating/25, 3000)
	// fuel cell plus the smallest store, replaced every lifetime
	fuelCellCapex := (12000 + dispatch.StorageCapex(0.1)) * float64(npcYears/fuelCellLifetime)

	var s Systems
	for _, f := range Hydrogen {
		s.HydrogenBoiler = append(s.HydrogenBoiler,
			build("hydrogen-boiler/"+f.Name, f.Price, boilerDemand, boilerCapex, f.Emissions, discountFactor))
		s.HydrogenFuelCell = append(s.HydrogenFuelCell,
			build("hydrogen-fuel-cell/"+f.Name, f.Price, fuelCellDemand, fuelCellCapex, f.Emissions, discountFactor))
	}
	s.GasBoiler = build("gas-boiler", 0.04, boilerDemand, boilerCapex-500, 183, discountFactor)
	s.BiomassBoiler = build("biomass-boiler", 0.0411, boilerDemand, math.Min(9000+epcSpaceHeating/4, 19000), 90, discountFactor)
	return s
}
