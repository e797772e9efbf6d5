// Package observability provides OpenTelemetry metrics and tracing for
// pipekit. It initializes OTLP HTTP exporters and exposes a Metrics
// bundle with the instruments the stage decorators record into.
//
// The pipeline core never touches this package; observability is wired
// in exclusively through the decorators in the pipeline package.
package observability
