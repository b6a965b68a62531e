// Package signpostz provides minimal, primitive signpost-style trace markers.
//
// signpostz focuses on emitting discrete events and timed intervals into a
// pluggable tracing backend without the complexity of a full tracing
// framework. It's designed for instrumenting hot paths where the cost of a
// disabled trace session must stay near zero.
//
// Core Components:.
//   - Logger: Names one (subsystem, category) channel and caches its handle.
//   - Interval: Scope guard pairing every begin marker with one end marker.
//   - Backend: Destination for markers (Recorder, ZapBackend, OTelBridge).
//   - Name: Validated, zero-terminated marker name built once at init.
//
// Basic Usage:.
//
//	var logger = signpostz.MustPOILogger("io.github.zoobzio")
//
//	var nameCompute = signpostz.MustName("Compute result")
//
//	func compute() {
//		iv := logger.BeginInterval(42, nameCompute)
//		defer iv.End()
//		// do work
//	}
//
// Thread Safety:.
//
// Logger is safe for concurrent use by multiple goroutines, including the
// first call that resolves the backend handle. Interval.End is safe to call
// more than once; only the first call emits the end marker.
//
// Disabled Sessions:.
//
// Every emission re-checks Backend.Enabled first. When tracing is off the
// call returns after that single check, with no buffer work and no
// allocation. A disabled session is normal operation, not an error.
//
// Reserved IDs:.
//
// Interval and event ids 0 and math.MaxUint64 are reserved by tracing
// facilities for "no id" and "wildcard" semantics. Passing them is a caller
// error that is deliberately not validated at runtime.
package signpostz

import "math"

// Kind classifies a marker: a single point in time or one side of an
// interval.
type Kind uint8

const (
	// KindEvent marks a single point in time.
	KindEvent Kind = iota
	// KindIntervalBegin opens a timed interval.
	KindIntervalBegin
	// KindIntervalEnd closes a timed interval.
	KindIntervalEnd
)

// String returns the marker kind as a short label.
func (k Kind) String() string {
	switch k {
	case KindEvent:
		return "event"
	case KindIntervalBegin:
		return "interval-begin"
	case KindIntervalEnd:
		return "interval-end"
	default:
		return "unknown"
	}
}

// Reserved id sentinels. Never pass these as a caller-chosen id.
const (
	// IDNull is the facility's "no id" sentinel.
	IDNull uint64 = 0
	// IDInvalid is the facility's wildcard sentinel.
	IDInvalid uint64 = math.MaxUint64
)

// Predefined categories. All three currently resolve to the same underlying
// category string; profiling tools treat PointsOfInterest as default-visible
// and enable the dynamic variants only while actively profiling.
var (
	// CategoryPointsOfInterest shows up by default in profiling tools.
	CategoryPointsOfInterest = MustName("PointsOfInterest")

	// CategoryDynamicTracing is disabled unless the application runs under
	// a profiler, reducing logging overhead.
	CategoryDynamicTracing = MustName("PointsOfInterest")

	// CategoryDynamicStackTracing additionally captures stack traces when
	// running under a profiler.
	CategoryDynamicStackTracing = MustName("PointsOfInterest")
)
