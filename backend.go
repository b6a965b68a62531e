package signpostz

import "sync/atomic"

// Handle is an opaque identifier for one (subsystem, category) logging
// channel, stable for the process lifetime of the backend that issued it.
type Handle uint64

// Backend is the destination for trace markers. Implementations must be
// safe for concurrent use by multiple goroutines.
//
// Emit is fire-and-forget: it has no return value and no error path. A
// backend that cannot record a marker drops it. The buf argument is a
// caller-owned scratch buffer required by native facilities even when no
// payload is attached; in-process backends may ignore it.
type Backend interface {
	// CreateLog returns a stable handle for the channel. Safe to call
	// from any goroutine.
	CreateLog(subsystem, category Name) Handle

	// Enabled reports whether markers for h currently have a consumer.
	// Must be cheap, side-effect-free, and safe to call at any rate.
	Enabled(h Handle) bool

	// Emit records one marker. Only called when Enabled(h) reported true,
	// though backends must tolerate races with enablement changes.
	Emit(h Handle, kind Kind, id uint64, name Name, buf []byte)
}

// channel is one registered (subsystem, category) pair. The in-process
// backends key their handle tables on it.
type channel struct {
	subsystem Name
	category  Name
}

// disabledBackend is the zero-configuration default: handles resolve but
// tracing is never enabled, so instrumented code runs at the cost of one
// atomic load and one interface call per emission.
type disabledBackend struct{}

func (disabledBackend) CreateLog(_, _ Name) Handle              { return 0 }
func (disabledBackend) Enabled(Handle) bool                     { return false }
func (disabledBackend) Emit(Handle, Kind, uint64, Name, []byte) {}

// processBackend holds the process-global backend. Loggers without an
// explicit WithBackend binding snapshot this at first use.
var processBackend atomic.Pointer[Backend]

func init() {
	var b Backend = disabledBackend{}
	processBackend.Store(&b)
}

// SetBackend installs b as the process-global marker destination.
//
// Call once during startup, before instrumented code runs. Loggers bind to
// the backend visible at their first use; handles already resolved against
// a previous backend stay with that backend.
func SetBackend(b Backend) {
	if b == nil {
		b = disabledBackend{}
	}
	processBackend.Store(&b)
}

// CurrentBackend returns the process-global backend.
func CurrentBackend() Backend {
	return *processBackend.Load()
}
