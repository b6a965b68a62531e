package signpostz

import (
	"context"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName identifies this bridge to the OpenTelemetry SDK.
const instrumentationName = "github.com/zoobzio/signpostz"

// spanKey matches an interval-end marker to its open span. The facility
// pairs begin/end by id and name together, so overlapping intervals of
// different types stay distinct.
type spanKey struct {
	handle Handle
	id     uint64
	name   string
}

// OTelBridge maps markers onto OpenTelemetry traces: intervals become
// spans, events become zero-length spans. Safe for concurrent use by
// multiple goroutines.
//
// OpenTelemetry has no per-tracer cheap enablement probe, so the bridge
// carries its own toggle; leave it enabled and control sampling in the
// tracer provider instead when that fits better.
type OTelBridge struct {
	tracer trace.Tracer

	mu         sync.Mutex
	channels   map[Handle]channel
	byChannel  map[channel]Handle
	open       map[spanKey]trace.Span
	nextHandle Handle

	enabled   atomic.Bool
	unmatched atomic.Int64
}

// NewOTelBridge creates an enabled bridge emitting through tracer. A nil
// tracer uses the globally registered provider.
func NewOTelBridge(tracer trace.Tracer) *OTelBridge {
	if tracer == nil {
		tracer = otel.Tracer(instrumentationName)
	}
	b := &OTelBridge{
		tracer:     tracer,
		channels:   make(map[Handle]channel),
		byChannel:  make(map[channel]Handle),
		open:       make(map[spanKey]trace.Span),
		nextHandle: 1,
	}
	b.enabled.Store(true)
	return b
}

// SetEnabled toggles the bridge. Intervals begun while enabled still close
// their span if the end marker arrives after disablement is lifted again;
// end markers skipped while disabled leave the span open until a later
// matching end.
func (b *OTelBridge) SetEnabled(enabled bool) {
	b.enabled.Store(enabled)
}

// UnmatchedEnds returns how many end markers arrived without an open span.
func (b *OTelBridge) UnmatchedEnds() int64 {
	return b.unmatched.Load()
}

// CreateLog registers the channel and returns its stable handle.
func (b *OTelBridge) CreateLog(subsystem, category Name) Handle {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := channel{subsystem: subsystem, category: category}
	if h, ok := b.byChannel[ch]; ok {
		return h
	}
	h := b.nextHandle
	b.nextHandle++
	b.channels[h] = ch
	b.byChannel[ch] = h
	return h
}

// Enabled reports the bridge's toggle state.
func (b *OTelBridge) Enabled(Handle) bool {
	return b.enabled.Load()
}

// Emit maps one marker onto the OpenTelemetry API. The scratch buffer is
// unused. Markers for unknown handles are dropped.
func (b *OTelBridge) Emit(h Handle, kind Kind, id uint64, name Name, _ []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch, ok := b.channels[h]
	if !ok {
		return
	}

	switch kind {
	case KindEvent:
		// Points in time have no duration; a span ended at start renders
		// as an instant in trace viewers.
		_, span := b.tracer.Start(context.Background(), name.String(),
			trace.WithAttributes(b.attrs(ch, kind, id)...))
		span.End()

	case KindIntervalBegin:
		key := spanKey{handle: h, id: id, name: name.String()}
		if prev, exists := b.open[key]; exists {
			// Same (id, name) begun twice without an end; close the
			// orphan rather than leak it.
			prev.End()
		}
		_, span := b.tracer.Start(context.Background(), name.String(),
			trace.WithAttributes(b.attrs(ch, kind, id)...))
		b.open[key] = span

	case KindIntervalEnd:
		key := spanKey{handle: h, id: id, name: name.String()}
		span, exists := b.open[key]
		if !exists {
			b.unmatched.Add(1)
			return
		}
		delete(b.open, key)
		span.End()
	}
}

func (*OTelBridge) attrs(ch channel, kind Kind, id uint64) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("signpost.subsystem", ch.subsystem.String()),
		attribute.String("signpost.category", ch.category.String()),
		attribute.String("signpost.kind", kind.String()),
		attribute.Int64("signpost.id", int64(id)),
	}
}
