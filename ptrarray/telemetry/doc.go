// Package telemetry records OpenTelemetry metrics for owning-array
// lifecycle events.
//
// Recorder keeps the instrument set small and fixed: counters for elements
// emplaced, added, and released, plus an up-down counter tracking live
// owned elements. A nil *Recorder is valid and records nothing, so callers
// can wire telemetry conditionally without branching at every call site.
package telemetry
