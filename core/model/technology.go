package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOption is returned when an option name cannot be parsed.
var ErrUnknownOption = errors.New("unknown option")

// HeatOption identifies the heat source of a system.
type HeatOption int

const (
	ResistiveHeating HeatOption = iota
	AirSourceHeatPump
	GroundSourceHeatPump
)

// HeatOptions lists every heat source in evaluation order.
var HeatOptions = [...]HeatOption{ResistiveHeating, AirSourceHeatPump, GroundSourceHeatPump}

// String returns a short label for the heat option.
func (h HeatOption) String() string {
	switch h {
	case ResistiveHeating:
		return "ERH"
	case AirSourceHeatPump:
		return "ASHP"
	case GroundSourceHeatPump:
		return "GSHP"
	default:
		return "unknown"
	}
}

// Slug returns the identifier used in reports.
func (h HeatOption) Slug() string {
	switch h {
	case ResistiveHeating:
		return "electric-boiler"
	case AirSourceHeatPump:
		return "air-source-heat-pump"
	case GroundSourceHeatPump:
		return "ground-source-heat-pump"
	default:
		return "unknown"
	}
}

// IsHeatPump reports whether the heat source follows the heat pump thermostat schedule.
func (h HeatOption) IsHeatPump() bool {
	return h == AirSourceHeatPump || h == GroundSourceHeatPump
}

// ParseHeatOption accepts either the short label or the report slug.
func ParseHeatOption(s string) (HeatOption, error) {
	for _, h := range HeatOptions {
		if strings.EqualFold(s, h.String()) || strings.EqualFold(s, h.Slug()) {
			return h, nil
		}
	}
	return 0, fmt.Errorf("%w: heat option %q", ErrUnknownOption, s)
}

// SolarOption identifies the solar generation installed on the roof.
type SolarOption int

const (
	SolarNone SolarOption = iota
	SolarPV
	SolarFlatPlate
	SolarEvacuatedTube
	SolarPVFlatPlate
	SolarPVEvacuatedTube
	SolarPVThermalHybrid
)

// SolarOptions lists every solar option in evaluation order.
var SolarOptions = [...]SolarOption{
	SolarNone,
	SolarPV,
	SolarFlatPlate,
	SolarEvacuatedTube,
	SolarPVFlatPlate,
	SolarPVEvacuatedTube,
	SolarPVThermalHybrid,
}

// String returns a short label for the solar option.
func (s SolarOption) String() string {
	switch s {
	case SolarNone:
		return "None"
	case SolarPV:
		return "PV"
	case SolarFlatPlate:
		return "FP"
	case SolarEvacuatedTube:
		return "ET"
	case SolarPVFlatPlate:
		return "PV+FP"
	case SolarPVEvacuatedTube:
		return "PV+ET"
	case SolarPVThermalHybrid:
		return "PVT"
	default:
		return "unknown"
	}
}

// Slug returns the identifier used in reports.
func (s SolarOption) Slug() string {
	switch s {
	case SolarNone:
		return "none"
	case SolarPV:
		return "photovoltaic"
	case SolarFlatPlate:
		return "flat-plate"
	case SolarEvacuatedTube:
		return "evacuated-tube"
	case SolarPVFlatPlate:
		return "flat-plate-and-photovoltaic"
	case SolarPVEvacuatedTube:
		return "evacuated-tube-and-photovoltaic"
	case SolarPVThermalHybrid:
		return "photovoltaic-thermal-hybrid"
	default:
		return "unknown"
	}
}

// HasSolarThermal reports whether the option includes a solar thermal collector.
func (s SolarOption) HasSolarThermal() bool {
	return s != SolarNone && s != SolarPV
}

// SharesRoof reports whether PV panels and thermal collectors split the roof area.
func (s SolarOption) SharesRoof() bool {
	return s == SolarPVFlatPlate || s == SolarPVEvacuatedTube
}

// ParseSolarOption accepts either the short label or the report slug.
func ParseSolarOption(s string) (SolarOption, error) {
	for _, o := range SolarOptions {
		if strings.EqualFold(s, o.String()) || strings.EqualFold(s, o.Slug()) {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%w: solar option %q", ErrUnknownOption, s)
}

// Combination pairs a heat source with a solar option.
type Combination struct {
	Heat  HeatOption  `json:"heat_option"`
	Solar SolarOption `json:"solar_option"`
}

// Index returns the position of the combination in Combinations().
func (c Combination) Index() int {
	return int(c.Heat)*len(SolarOptions) + int(c.Solar)
}

func (c Combination) String() string {
	return c.Heat.String() + "/" + c.Solar.String()
}

// Combinations returns the 21 technology combinations, heat source major.
func Combinations() []Combination {
	out := make([]Combination, 0, len(HeatOptions)*len(SolarOptions))
	for _, h := range HeatOptions {
		for _, s := range SolarOptions {
			out = append(out, Combination{Heat: h, Solar: s})
		}
	}
	return out
}
