// Package observability provides OpenTelemetry tracing and metrics for the
// arrkit toolkit.
//
// The toolkit itself never initializes providers; embedding applications
// call InitTracer/InitMeter once and the transform package's decorators
// record spans and metrics against the global providers. When no provider
// is configured the otel no-op implementations make every recording free.
package observability
