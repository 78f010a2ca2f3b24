// Package building derives the house profile consumed by the dispatch
// simulator from a short description of the house and a year of weather.
package building

import (
	"errors"
	"fmt"
	"math"

	"github.com/kilianp07/heatplan/core/climate"
	"github.com/kilianp07/heatplan/core/model"
)

const (
	// HotWaterTemperature is the delivered hot water temperature in degC.
	HotWaterTemperature = 51.0
	// resistiveSetback is how far the resistive schedule drops overnight.
	resistiveSetback = 2.0
	boilerEfficiency = 0.9
)

var ErrInvalidHouse = errors.New("invalid house description")

// HouseSpec describes a house as entered by the user.
type HouseSpec struct {
	Name                  string  `json:"name" yaml:"name" mapstructure:"name"`
	Postcode              string  `json:"postcode" yaml:"postcode" mapstructure:"postcode"`
	Latitude              float64 `json:"latitude" yaml:"latitude" mapstructure:"latitude"`
	Longitude             float64 `json:"longitude" yaml:"longitude" mapstructure:"longitude"`
	Occupants             int     `json:"occupants" yaml:"occupants" mapstructure:"occupants"`
	HouseSize             float64 `json:"house_size" yaml:"house_size" mapstructure:"house_size"` // m2
	ThermostatTemperature float64 `json:"thermostat_temperature" yaml:"thermostat_temperature" mapstructure:"thermostat_temperature"`
	EPCSpaceHeating       float64 `json:"epc_space_heating" yaml:"epc_space_heating" mapstructure:"epc_space_heating"` // kWh/year
	TESVolumeMax          float64 `json:"tes_volume_max" yaml:"tes_volume_max" mapstructure:"tes_volume_max"`          // m3
}

// Validate checks the description can be turned into a profile.
func (s HouseSpec) Validate() error {
	switch {
	case s.Postcode == "":
		return fmt.Errorf("%w: postcode is required", ErrInvalidHouse)
	case s.HouseSize <= 0:
		return fmt.Errorf("%w: house_size must be positive", ErrInvalidHouse)
	case s.Occupants <= 0:
		return fmt.Errorf("%w: occupants must be positive", ErrInvalidHouse)
	case s.EPCSpaceHeating <= 0:
		return fmt.Errorf("%w: epc_space_heating must be positive", ErrInvalidHouse)
	case s.TESVolumeMax < 0.1:
		return fmt.Errorf("%w: tes_volume_max must be at least 0.1 m3", ErrInvalidHouse)
	case s.Latitude < -90 || s.Latitude > 90 || s.Longitude < -180 || s.Longitude > 180:
		return fmt.Errorf("%w: coordinates out of range", ErrInvalidHouse)
	}
	return nil
}

// Building is a prepared house.
type Building struct {
	Spec    HouseSpec
	Region  int
	Profile model.HouseProfile
	// OptimisedEPCDemand is the space heating demand reached by the calibrated
	// transmittance, the closest match to Spec.EPCSpaceHeating.
	OptimisedEPCDemand float64
	// ColdestDefaulted is set when the location is outside the coldest-hour
	// table and heat pumps are sized for 0 degC.
	ColdestDefaulted bool
}

// Prepare calibrates the fabric against the EPC figure and computes the
// annual demand of both thermostat schedules over weather.
func Prepare(spec HouseSpec, weather model.Weather) (Building, error) {
	if err := spec.Validate(); err != nil {
		return Building{}, err
	}
	if err := weather.Validate(); err != nil {
		return Building{}, err
	}
	regionID, err := climate.RegionFor(spec.Postcode)
	if err != nil {
		return Building{}, err
	}
	epc, err := climate.EPCClimate(regionID)
	if err != nil {
		return Building{}, err
	}

	coldest, coldestKnown := climate.ColdestTemperature(spec.Latitude, spec.Longitude)
	p := model.HouseProfile{
		HouseSize:             spec.HouseSize,
		HeatCapacity:          250 * spec.HouseSize / 3600,
		BodyHeatGain:          float64(spec.Occupants) * 60 / 1000,
		SolarGainFactor:       (spec.HouseSize * 0.15 / 2) * 0.77 * 0.7 * 0.76 * 0.9 / 1000,
		HotWaterVolume:        DailyHotWaterVolume(spec.Occupants),
		HotWaterTemperature:   HotWaterTemperature,
		ThermostatTemperature: spec.ThermostatTemperature,
		GroundTemperature:     GroundTemperature(spec.Latitude),
		ColdestTemperature:    coldest,
		HotWaterHourly:        hotWaterHourlyRatios,
		HotWaterMonthly:       hotWaterMonthlyFactors,
		ColdWater:             coldWater(spec.Latitude),
		SolarRatioNorth:       north.ratios(spec.Latitude, windowTilt),
		SolarRatioSouth:       south.ratios(spec.Latitude, windowTilt),
		RoofRatioSouth:        south.ratios(spec.Latitude, roofTilt),
	}
	for h := 0; h < 24; h++ {
		p.HeatPumpSchedule[h] = spec.ThermostatTemperature
		p.ResistiveSchedule[h] = spec.ThermostatTemperature
		if h < 7 || h > 21 {
			p.ResistiveSchedule[h] -= resistiveSetback
		}
	}

	u, epcDemand := Calibrate(p, epc, EPCBodyGain(spec.HouseSize), spec.EPCSpaceHeating)
	p.ThermalTransmittance = u
	p.ResistiveDemand = Demand(p, p.ResistiveSchedule, weather)
	p.HeatPumpDemand = Demand(p, p.HeatPumpSchedule, weather)

	return Building{
		Spec:               spec,
		Region:             regionID,
		Profile:            p,
		OptimisedEPCDemand: epcDemand,
		ColdestDefaulted:   !coldestKnown,
	}, nil
}

// DailyHotWaterVolume returns the average daily hot water use in litres.
func DailyHotWaterVolume(occupants int) float64 {
	n := float64(occupants)
	showers := (0.45*n + 0.65) * 28.8
	bath := (0.13*n + 0.19) * 50.8
	other := 9.8*n + 14
	return showers + bath + other
}

// EPCBodyGain returns the body heat gain (kWh per hour) of the standard EPC
// occupancy for a house of the given floor area.
func EPCBodyGain(houseSize float64) float64 {
	occupants := 1 + 1.76*(1-math.Exp(-0.000349*math.Pow(houseSize-13.9, 2))) + 0.0013*(houseSize-13.9)
	return occupants * 60 / 1000
}

// GroundTemperature is a linear fit of UK ground temperature at 100 m depth.
func GroundTemperature(latitude float64) float64 {
	return 15 - (latitude-50)*(4.0/9.0)
}
