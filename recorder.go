package signpostz

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/zoobzio/clockz"
)

// Marker is one recorded trace marker.
//
//nolint:govet // Field alignment optimized for JSON serialization order
type Marker struct {
	Time      time.Time `json:"time"`
	Handle    Handle    `json:"handle"`
	Kind      Kind      `json:"kind"`
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Subsystem string    `json:"subsystem"`
	Category  string    `json:"category"`
}

// Recorder is an in-memory Backend that timestamps and buffers markers for
// later inspection. Safe for concurrent use by multiple goroutines.
//
// Recorder is the reference backend for tests: enablement can be toggled at
// any point, and CreateCalls exposes how many handles were actually
// resolved. When the buffer reaches maxMarkers further markers are dropped
// and counted rather than blocking the emitting goroutine.
//
//nolint:govet // Field alignment optimized for readability over memory
type Recorder struct {
	clock clockz.Clock

	mu         sync.Mutex
	markers    []Marker
	channels   map[Handle]channel
	byChannel  map[channel]Handle
	nextHandle Handle

	maxMarkers  int
	enabled     atomic.Bool
	createCalls atomic.Int64
	dropped     atomic.Int64
}

// DefaultMaxMarkers bounds a Recorder's buffer unless overridden.
const DefaultMaxMarkers = 65536

// NewRecorder creates an enabled recorder using the real clock.
func NewRecorder() *Recorder {
	return NewRecorderWithClock(clockz.RealClock)
}

// NewRecorderWithClock creates an enabled recorder with the specified
// clock. Enables clock injection for deterministic testing.
func NewRecorderWithClock(clock clockz.Clock) *Recorder {
	r := &Recorder{
		clock:      clock,
		channels:   make(map[Handle]channel),
		byChannel:  make(map[channel]Handle),
		nextHandle: 1,
		maxMarkers: DefaultMaxMarkers,
	}
	r.enabled.Store(true)
	return r
}

// SetEnabled toggles whether the recorder accepts markers. Emissions while
// disabled are skipped by callers at the Enabled check; the transition is
// visible to in-flight operations on their next check.
func (r *Recorder) SetEnabled(enabled bool) {
	r.enabled.Store(enabled)
}

// SetMaxMarkers bounds the buffer. Markers beyond the bound are dropped
// and counted. n <= 0 removes the bound.
func (r *Recorder) SetMaxMarkers(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.maxMarkers = n
}

// CreateLog returns the stable handle for the channel, registering it on
// first sight. Repeated calls for the same pair return the same handle.
func (r *Recorder) CreateLog(subsystem, category Name) Handle {
	r.createCalls.Add(1)

	r.mu.Lock()
	defer r.mu.Unlock()

	ch := channel{subsystem: subsystem, category: category}
	if h, ok := r.byChannel[ch]; ok {
		return h
	}
	h := r.nextHandle
	r.nextHandle++
	r.channels[h] = ch
	r.byChannel[ch] = h
	return h
}

// Enabled reports whether the recorder currently accepts markers.
func (r *Recorder) Enabled(Handle) bool {
	return r.enabled.Load()
}

// Emit timestamps and buffers one marker. The scratch buffer is unused by
// the in-memory recorder. Markers for unknown handles are dropped.
func (r *Recorder) Emit(h Handle, kind Kind, id uint64, name Name, _ []byte) {
	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	ch, ok := r.channels[h]
	if !ok {
		r.dropped.Add(1)
		return
	}
	if r.maxMarkers > 0 && len(r.markers) >= r.maxMarkers {
		r.dropped.Add(1)
		return
	}
	r.markers = append(r.markers, Marker{
		Time:      now,
		Handle:    h,
		Kind:      kind,
		ID:        id,
		Name:      name.String(),
		Subsystem: ch.subsystem.String(),
		Category:  ch.category.String(),
	})
}

// Markers returns a copy of all buffered markers in emission order. The
// returned slice is safe to modify without affecting the recorder.
func (r *Recorder) Markers() []Marker {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.markers) == 0 {
		return nil
	}
	result := make([]Marker, len(r.markers))
	copy(result, r.markers)
	return result
}

// Count returns the current number of buffered markers.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.markers)
}

// CreateCalls returns how many times CreateLog has run, counting repeats
// for already-registered channels.
func (r *Recorder) CreateCalls() int64 {
	return r.createCalls.Load()
}

// DroppedCount returns the total number of markers dropped due to the
// buffer bound or unknown handles.
func (r *Recorder) DroppedCount() int64 {
	return r.dropped.Load()
}

// Reset clears buffered markers and the dropped counter. Registered
// channels and their handles survive, matching the process-lifetime
// stability backends must provide.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.markers = r.markers[:0]
	r.dropped.Store(0)
}
