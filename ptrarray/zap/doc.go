// Package zap provides the zap-backed implementation of log.Logger.
//
// Build returns a structured JSON logger with an environment-appropriate
// profile and a runtime-adjustable level handle. When an OpenTelemetry
// scope name is configured, log records are additionally bridged to the
// OTel log pipeline, and records emitted with a context carrying an active
// span are tagged with trace_id and span_id for correlation.
package zap
