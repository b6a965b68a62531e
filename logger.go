package signpostz

import (
	"sync"
	"sync/atomic"
)

// Logger names one (subsystem, category) marker channel and caches the
// backend handle for it. Safe for concurrent use by multiple goroutines.
//
// Create loggers once, typically as package-level vars; construction does
// no backend work. The handle is resolved lazily on first emission and the
// logger lives for the process duration.
//
//nolint:govet // Field order optimized for readability over memory
type Logger struct {
	subsystem Name
	category  Name

	// backend is the explicit binding from WithBackend; nil means the
	// process-global backend is captured at first use.
	backend Backend

	// bound and handle are written exactly once inside init.Do and read
	// thereafter; the Once provides the happens-before edge for every
	// reader, the atomic store keeps the handle safe for racy inspection.
	bound  Backend
	handle atomic.Uint64
	init   sync.Once
}

// New creates a logger for the given subsystem and category.
//
// The recommendation is a reverse domain name as subsystem and one of the
// predefined categories: CategoryPointsOfInterest (visible by default in
// profiling tools), CategoryDynamicTracing, or CategoryDynamicStackTracing.
func New(subsystem, category Name) *Logger {
	return &Logger{
		subsystem: subsystem,
		category:  category,
	}
}

// MustPOILogger creates a points-of-interest logger for the given
// subsystem, validating the subsystem name. Intended for package-level var
// declarations:
//
//	var logger = signpostz.MustPOILogger("io.github.zoobzio")
func MustPOILogger(subsystem string) *Logger {
	return New(MustName(subsystem), CategoryPointsOfInterest)
}

// WithCategory returns a copy of the logger with a different category.
//
// Only meaningful before first use: the handle, once cached, stays tied to
// the (subsystem, category) pair it was created with. Changing category
// after resolution is a caller error this design does not detect; the
// original handle remains in effect.
func (l *Logger) WithCategory(category Name) *Logger {
	return &Logger{
		subsystem: l.subsystem,
		category:  category,
		backend:   l.backend,
	}
}

// WithBackend returns a copy of the logger bound to b instead of the
// process-global backend. Enables backend injection for deterministic
// testing. Only meaningful before first use, like WithCategory.
func (l *Logger) WithBackend(b Backend) *Logger {
	return &Logger{
		subsystem: l.subsystem,
		category:  l.category,
		backend:   b,
	}
}

// Subsystem returns the logger's subsystem name.
func (l *Logger) Subsystem() Name { return l.subsystem }

// Category returns the logger's category name.
func (l *Logger) Category() Name { return l.category }

// get resolves the backend handle, performing the CreateLog call exactly
// once across all concurrent callers. Latecomers block inside init.Do
// until the winner finishes, then observe the fully-published handle.
func (l *Logger) get() (Backend, Handle) {
	l.init.Do(func() {
		b := l.backend
		if b == nil {
			b = CurrentBackend()
		}
		l.bound = b
		l.handle.Store(uint64(b.CreateLog(l.subsystem, l.category)))
	})
	return l.bound, Handle(l.handle.Load())
}

// EmitEvent emits a single point-in-time marker.
//
// When tracing is disabled for this channel the call returns after the
// enablement check with no other side effect. This is the hot path; it
// performs no buffer work before the check.
//
// The id is arbitrary but must not be IDNull or IDInvalid. Prefer names
// built once with MustName over names constructed at call time.
func (l *Logger) EmitEvent(id uint64, name Name) {
	b, h := l.get()
	if !b.Enabled(h) {
		return
	}
	var buf [eventBufSize]byte
	b.Emit(h, KindEvent, id, name, buf[:])
}

// BeginInterval emits an interval-begin marker and returns the guard that
// ends it.
//
// The guard is returned whether or not the begin marker was emitted; the
// end-side enablement is re-evaluated when the guard ends, so toggling
// tracing mid-interval is safe in both directions. End the interval on
// every exit path:
//
//	iv := logger.BeginInterval(42, nameCompute)
//	defer iv.End()
//
// The id disambiguates overlapping intervals; keep it unique among
// intervals that can overlap in time, and never IDNull or IDInvalid.
func (l *Logger) BeginInterval(id uint64, name Name) *Interval {
	b, h := l.get()
	if b.Enabled(h) {
		var buf [eventBufSize]byte
		b.Emit(h, KindIntervalBegin, id, name, buf[:])
	}
	return &Interval{log: l, id: id, name: name}
}

// WithInterval runs body inside an interval, guaranteeing the end marker
// on every exit path including panics.
func (l *Logger) WithInterval(id uint64, name Name, body func()) {
	iv := l.BeginInterval(id, name)
	defer iv.End()
	body()
}

// Scratch buffer sizes handed to Backend.Emit. Native facilities require a
// caller-owned buffer even with no payload attached; the end side needs
// only the smaller one.
const (
	eventBufSize = 64
	endBufSize   = 4
)
