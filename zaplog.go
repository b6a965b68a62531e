package signpostz

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapBackend forwards markers to a zap logger as structured entries.
// Safe for concurrent use by multiple goroutines.
//
// Enablement maps to the zap core's level check, so a trace level disabled
// in the zap configuration short-circuits emissions the same way a native
// facility with no consumer would. Each channel gets a child logger with
// subsystem and category fields attached once at registration.
type ZapBackend struct {
	logger *zap.Logger
	level  zapcore.Level

	mu         sync.RWMutex
	channels   map[Handle]*zap.Logger
	byChannel  map[channel]Handle
	nextHandle Handle
}

// NewZapBackend creates a backend emitting markers to logger at level.
func NewZapBackend(logger *zap.Logger, level zapcore.Level) *ZapBackend {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapBackend{
		logger:     logger,
		level:      level,
		channels:   make(map[Handle]*zap.Logger),
		byChannel:  make(map[channel]Handle),
		nextHandle: 1,
	}
}

// CreateLog registers the channel and returns its stable handle. The child
// logger carries the subsystem and category fields for every marker.
func (b *ZapBackend) CreateLog(subsystem, category Name) Handle {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := channel{subsystem: subsystem, category: category}
	if h, ok := b.byChannel[ch]; ok {
		return h
	}
	h := b.nextHandle
	b.nextHandle++
	b.channels[h] = b.logger.With(
		zap.String("subsystem", subsystem.String()),
		zap.String("category", category.String()),
	)
	b.byChannel[ch] = h
	return h
}

// Enabled reports whether the zap core would record an entry at the
// backend's marker level. Cheap and side-effect-free.
func (b *ZapBackend) Enabled(Handle) bool {
	return b.logger.Core().Enabled(b.level)
}

// Emit logs one marker through the channel's child logger. The scratch
// buffer is unused. Markers for unknown handles are dropped.
func (b *ZapBackend) Emit(h Handle, kind Kind, id uint64, name Name, _ []byte) {
	b.mu.RLock()
	child := b.channels[h]
	b.mu.RUnlock()

	if child == nil {
		return
	}
	child.Log(b.level, name.String(),
		zap.Stringer("kind", kind),
		zap.Uint64("id", id),
	)
}
