package signpostz

import "sync/atomic"

// Interval is the scope guard for a timed interval. It pairs the begin
// marker emitted by Logger.BeginInterval with exactly one end marker,
// emitted by the first End call.
//
// Intervals are single-use: hold exactly one reference and End it on every
// exit path, normally via defer. Safe for concurrent use; extra End calls
// are no-ops.
type Interval struct {
	log  *Logger
	id   uint64
	name Name

	ended atomic.Bool
}

// ID returns the interval's caller-chosen id.
func (iv *Interval) ID() uint64 { return iv.id }

// Name returns the interval's name.
func (iv *Interval) Name() Name { return iv.name }

// End emits the interval-end marker, at most once per guard.
//
// Enablement is re-checked here independently of the begin side: a session
// disabled for the whole interval emits nothing, and a session toggled
// mid-interval emits only the side that was enabled. Safe to call multiple
// times; subsequent calls return immediately.
func (iv *Interval) End() {
	if iv == nil || !iv.ended.CompareAndSwap(false, true) {
		return
	}
	b, h := iv.log.get()
	if !b.Enabled(h) {
		return
	}
	var buf [endBufSize]byte
	b.Emit(h, KindIntervalEnd, iv.id, iv.name, buf[:])
}

// Ended reports whether End has already run for this guard.
func (iv *Interval) Ended() bool {
	return iv.ended.Load()
}
