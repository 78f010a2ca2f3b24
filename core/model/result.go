package model

import "math"

// DispatchResult is the annual outcome of one simulated system and tariff.
type DispatchResult struct {
	OpexPeak    float64 `json:"opex_peak"`
	OpexOffPeak float64 `json:"opex_off_peak"`
	Capex       float64 `json:"capex"`
	NPC         float64 `json:"npc"`
	Emissions   float64 `json:"emissions"` // gCO2e per year
}

// Opex returns the total operational expenditure per year.
func (r DispatchResult) Opex() float64 {
	return r.OpexPeak + r.OpexOffPeak
}

// SizingPoint is a coordinate on the solar size by storage size grid.
type SizingPoint struct {
	Solar   int `json:"solar"`
	Storage int `json:"storage"`
}

// Specification is the best known system for a technology combination.
// It only ever improves: Offer replaces it on a strictly lower NPC.
type Specification struct {
	Combination      Combination    `json:"combination"`
	Point            SizingPoint    `json:"point"`
	PVSize           int            `json:"pv_size"`
	SolarThermalSize int            `json:"solar_thermal_size"`
	StorageVolume    float64        `json:"storage_volume"`
	Tariff           Tariff         `json:"tariff"`
	Result           DispatchResult `json:"result"`
	Evaluated        bool           `json:"evaluated"`
}

// NewSpecification returns an empty specification for c. Its NPC is +Inf so
// the first finite offer always wins.
func NewSpecification(c Combination) *Specification {
	return &Specification{Combination: c, Result: DispatchResult{NPC: math.Inf(1)}}
}

// Offer replaces the specification with cand if cand has a strictly lower NPC.
// It reports whether the replacement happened.
func (s *Specification) Offer(cand Specification) bool {
	if !(cand.Result.NPC < s.Result.NPC) {
		return false
	}
	cand.Combination = s.Combination
	cand.Evaluated = true
	*s = cand
	return true
}
