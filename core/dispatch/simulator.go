package dispatch

import (
	"math"

	"github.com/kilianp07/heatplan/core/model"
)

// Request identifies one system and tariff to simulate.
type Request struct {
	Combination      model.Combination
	PVSize           int     // m2
	SolarThermalSize int     // m2
	StorageVolume    float64 // m3
	Tariff           model.Tariff
}

// HourState is the simulated state at the end of one hour.
type HourState struct {
	Hour              int // hour of year
	Month             int
	HourOfDay         int
	InsideTemperature float64
	StateOfCharge     float64
	SpaceDemand       float64
	HotWaterDemand    float64
	ElectricalDemand  float64
	PVGeneration      float64
	SolarThermal      float64
	Import            float64
	Export            float64
	OffPeak           bool
}

// Simulator evaluates requests against a fixed set of annual inputs. It keeps
// no per-evaluation state and is safe for concurrent use.
type Simulator struct {
	in model.AnnualInputs
}

// NewSimulator returns a Simulator bound to in.
func NewSimulator(in model.AnnualInputs) *Simulator {
	return &Simulator{in: in}
}

// Inputs returns the annual inputs the simulator was built with.
func (s *Simulator) Inputs() model.AnnualInputs { return s.in }

// Evaluate simulates req over the whole year.
func (s *Simulator) Evaluate(req Request) model.DispatchResult {
	return s.run(req, nil)
}

// Trace simulates req and calls fn with the state at the end of every hour.
func (s *Simulator) Trace(req Request, fn func(HourState)) model.DispatchResult {
	return s.run(req, fn)
}

//gocyclo:ignore
func (s *Simulator) run(req Request, observe func(HourState)) model.DispatchResult {
	evaluations.WithLabelValues(req.Combination.Heat.String(), req.Tariff.String()).Inc()

	house := s.in.House
	weather := s.in.Weather
	c := req.Combination

	schedule := house.Schedule(c.Heat)
	hpPower := ElectricalPower(c.Heat, house)
	capex := Capex(c, hpPower*ReferenceCOP(c.Heat), req.PVSize, req.SolarThermalSize, req.StorageVolume)
	store := newTank(req.StorageVolume, house.HotWaterTemperature)
	lossFactor := house.HouseSize * house.ThermalTransmittance / 1000
	capacity := house.HeatCapacity

	inside := house.ThermostatTemperature
	soc := store.full // starts full to avoid an initial demand spike
	var peak, offPeak, emissions float64

	h := 0
	for month, days := range model.DaysInMonth {
		ratioSouth := house.SolarRatioSouth[month]
		ratioNorth := house.SolarRatioNorth[month]
		coldWater := house.ColdWater[month]
		roof := house.RoofRatioSouth[month]
		for day := 0; day < days; day++ {
			for hour := 0; hour < 24; hour++ {
				outside := weather.OutsideTemperature[h]
				irradiance := weather.SolarIrradiance[h]
				agile := weather.AgilePrice[h]

				// 1. building thermal balance
				gainSouth := irradiance * ratioSouth * house.SolarGainFactor
				gainNorth := irradiance * ratioNorth * house.SolarGainFactor
				loss := lossFactor * (inside - outside)
				inside += (-loss + gainSouth + gainNorth + house.BodyHeatGain) / capacity

				// 2. store regime and standing losses
				upper, lower, height := store.regime(soc, coldWater)
				standing := store.losses(upper, lower, height, inside)
				soc -= standing
				inside += standing / capacity

				setpoint := schedule[hour]
				hotWater := house.HotWaterDemand(month, hour)

				// 3. heat source performance
				cop, copBoost := COP(c.Heat, house.HotWaterTemperature, outside, house.GroundTemperature)
				hpHeat := hpPower * cop

				// 4. generation
				incident := irradiance * roof / 1000
				pv := PVGeneration(c.Solar, req.PVSize, incident, upper, lower)
				solarThermal := SolarThermalGeneration(c.Solar, req.SolarThermalSize, incident, (upper+lower)/2-outside)
				soc = math.Min(soc+solarThermal, store.max)

				// 5. space heating has priority over store top-up
				space := 0.0
				if inside <= setpoint {
					need := (setpoint - inside) * capacity
					if need+hotWater < soc+hpHeat {
						inside = setpoint
						space = need
					} else {
						space = math.Max(soc, 0) + hpHeat - hotWater
						inside += space / capacity
					}
				}

				// 6. electrical demand: store first, then heat source
				var elec float64
				demand := space + hotWater
				switch {
				case demand < soc:
					soc -= demand
				case demand < soc+hpHeat:
					if soc > 0 {
						elec = (demand - soc) / cop
						soc = 0
					} else {
						elec = demand / cop
					}
				default:
					if soc > 0 {
						soc = 0
					}
					elec = hpPower
				}

				// 7. off-peak top-up
				if soc < store.full && ChargingWindow(req.Tariff, hour, agile) {
					spare := (hpPower - elec) * cop
					if store.full-soc < spare {
						elec += (store.full - soc) / cop
						soc = store.full
					} else {
						soc += spare
						elec = hpPower
					}
				}

				// 8. PV surplus boosts the store at the boost COP
				surplus := pv - elec
				gap := store.boost - soc
				if surplus > 0 && gap > 0 {
					heat := math.Min(gap, math.Min(surplus, hpPower-elec)*copBoost)
					if heat > 0 {
						soc += heat
						elec += heat / copBoost
					}
				}

				// 9. minimum charge floor
				if soc < store.min {
					spare := (hpPower - elec) * cop
					if store.min-soc < spare {
						elec += (store.min - soc) / cop
						soc = store.min
					} else if elec < hpPower {
						soc += spare
						elec = hpPower
					}
				}
				soc = clamp(soc, 0, store.max)

				// 10. grid exchange
				export := math.Max(pv-elec, 0)
				imported := math.Max(elec-pv, 0)

				// 11. costs
				rate := RateAt(req.Tariff, hour, agile)
				cost := imported*rate.Import - export*rate.Export
				if rate.OffPeak {
					offPeak += cost
				} else {
					peak += cost
				}

				// 12. emissions
				emissions += solarThermal * SolarThermalEmissions
				if req.PVSize > 0 {
					emissions += (pv-export)*PVEmissions + export*(PVEmissions-GridEmissions)
				}
				emissions += imported * GridEmissions

				if observe != nil {
					observe(HourState{
						Hour:              h,
						Month:             month,
						HourOfDay:         hour,
						InsideTemperature: inside,
						StateOfCharge:     soc,
						SpaceDemand:       space,
						HotWaterDemand:    hotWater,
						ElectricalDemand:  elec,
						PVGeneration:      pv,
						SolarThermal:      solarThermal,
						Import:            imported,
						Export:            export,
						OffPeak:           rate.OffPeak,
					})
				}
				h++
			}
		}
	}

	res := model.DispatchResult{
		OpexPeak:    peak,
		OpexOffPeak: offPeak,
		Capex:       capex,
		Emissions:   emissions,
	}
	res.NPC = NetPresentCost(capex, res.Opex(), s.in.DiscountFactor)
	return res
}
