// Package dispatch simulates one year of hourly operation for a heating system
// made of a heat source, optional solar generation and a hot water thermal
// store. A Simulator turns a technology, sizing and tariff into annual
// operating cost, capital cost, net present cost and emissions.
//
// Evaluations are pure functions of their inputs: the interior temperature
// and the store state of charge are reset at the start of every call, and
// the same request always yields bit-identical results.
package dispatch
