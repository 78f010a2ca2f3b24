// Package climate holds the UK climate reference data used to prepare a house
// profile: EPC climate regions keyed by postcode, their monthly outside
// temperatures and irradiances, and the coldest hour of the year by location.
package climate

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

var (
	ErrPostcodeNotFound = errors.New("postcode did not match any climate region")
	ErrUnknownRegion    = errors.New("unknown climate region")
)

type region struct {
	prefix   string
	min, max uint8 // district range, max == 0 matches any district
	id       uint8
}

func (r region) matches(postcode string, district int) bool {
	if !strings.HasPrefix(postcode, r.prefix) {
		return false
	}
	return r.max == 0 || (district >= int(r.min) && district <= int(r.max))
}

// normalize uppercases p and removes whitespace.
func normalize(p string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, p)
}

// district returns the first run of at most two digits in postcode.
func district(postcode string) (int, error) {
	var digits []byte
	for i := 0; i < len(postcode); i++ {
		c := postcode[i]
		if c >= '0' && c <= '9' {
			digits = append(digits, c)
			if len(digits) > 1 {
				break
			}
		} else if len(digits) > 0 {
			break
		}
	}
	if len(digits) == 0 {
		return 0, fmt.Errorf("%w: %q has no district number", ErrPostcodeNotFound, postcode)
	}
	return strconv.Atoi(string(digits))
}

// RegionFor returns the EPC climate region (1..21) of a UK postcode.
func RegionFor(postcode string) (int, error) {
	p := normalize(postcode)
	d, err := district(p)
	if err != nil {
		return 0, err
	}
	for _, r := range regions {
		if r.matches(p, d) {
			return int(r.id), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrPostcodeNotFound, postcode)
}

// EPC is the monthly climate of an EPC region.
type EPC struct {
	Region              int
	OutsideTemperatures [12]float64 // degC
	SolarIrradiances    [12]float64 // W/m2
}

// EPCClimate returns the monthly EPC climate of region id.
func EPCClimate(id int) (EPC, error) {
	temps, ok := epcOutsideTemperatures[id]
	if !ok {
		return EPC{}, fmt.Errorf("%w: %d", ErrUnknownRegion, id)
	}
	return EPC{Region: id, OutsideTemperatures: temps, SolarIrradiances: epcSolarIrradiances[id]}, nil
}

// GridKey rounds a coordinate to the nearest half degree and scales it by ten,
// the keying used by the coldest-hour table and the weather assets.
func GridKey(v float64) int {
	return int(math.Round(v*2) / 2 * 10)
}

// ColdestTemperature returns the coldest hourly outside temperature of the
// year (degC) at the given location. ok is false for locations outside the
// table, which get 0 degC.
func ColdestTemperature(latitude, longitude float64) (temp float64, ok bool) {
	milli, ok := coldestTemperatures[[2]int{GridKey(latitude), GridKey(longitude)}]
	if !ok {
		return 0, false
	}
	return float64(milli) / 1000, true
}
