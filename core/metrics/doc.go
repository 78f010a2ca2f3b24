// Package metrics defines the sinks that receive optimisation results. Sinks
// like PromSink, InfluxSink and MqttSink live in infra/metrics and register
// themselves with the factory; NewMetricsSink returns a MultiSink when more
// than one is configured.
package metrics
