// Package infra holds the adapters around the optimiser: the zerolog logger,
// the weather assets loader, the MQTT result publisher and the metrics sinks
// fed from the run event bus. Adapters implement interfaces declared in core.
package infra
