// Package telemetry provides opt-in observability for the reflow core.
//
// The core itself records nothing; hosts hand one of these instruments to a
// value or binding:
//
//	m := telemetry.NewMetrics(telemetry.WithNamespace("myapp"))
//	model := reflow.New(0, reflow.WithInstrument[int](m))
//
// Metrics exports Prometheus counters and histograms, Tracing emits an
// OpenTelemetry span per notification wave, and Multi fans out to several
// instruments at once.
package telemetry
