package model

import (
	"fmt"
	"strings"
)

// Tariff is an electricity pricing scheme.
type Tariff int

const (
	FlatRate Tariff = iota
	Economy7
	BulbSmart
	OctopusGo
	OctopusAgile
)

// Tariffs lists every tariff in evaluation order.
var Tariffs = [...]Tariff{FlatRate, Economy7, BulbSmart, OctopusGo, OctopusAgile}

func (t Tariff) String() string {
	switch t {
	case FlatRate:
		return "flat-rate"
	case Economy7:
		return "economy-7"
	case BulbSmart:
		return "bulb-smart"
	case OctopusGo:
		return "octopus-go"
	case OctopusAgile:
		return "octopus-agile"
	default:
		return "unknown"
	}
}

// ParseTariff converts a tariff name into a Tariff.
func ParseTariff(s string) (Tariff, error) {
	for _, t := range Tariffs {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: tariff %q", ErrUnknownOption, s)
}
