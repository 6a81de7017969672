package evmgr

import "fmt"

// Allocator produces an isolated, length-byte buffer for an asynchronous
// payload copy. The default allocator never fails; tests can inject one that
// returns an error to exercise the CodeOutOfMemory path, since Go's make()
// has no ordinary allocation-failure return.
type Allocator func(length int) ([]byte, error)

func defaultAllocator(length int) ([]byte, error) {
	return make([]byte, length), nil
}

// Config holds the kernel's tunable limits and feature switches. The zero
// value is not valid; use DefaultConfig or NewWithConfig, which calls
// Validate before any state is allocated.
type Config struct {
	// MaxEventTypes bounds the number of distinct event ids the manager will
	// accept. Corresponds to EM_MAX_EVENT_TYPES.
	MaxEventTypes int `json:"maxEventTypes" yaml:"maxEventTypes" env:"MAX_EVENT_TYPES" validate:"min=1" default:"64"`

	// MaxSubscribers bounds the number of subscribers per event id.
	// Corresponds to EM_MAX_SUBSCRIBERS.
	MaxSubscribers int `json:"maxSubscribers" yaml:"maxSubscribers" env:"MAX_SUBSCRIBERS" validate:"min=1" default:"16"`

	// AsyncQueueCapacity is the per-priority ring size; total asynchronous
	// capacity across all three priorities is 3x this value. Corresponds to
	// EM_ASYNC_QUEUE_SIZE.
	AsyncQueueCapacity int `json:"asyncQueueCapacity" yaml:"asyncQueueCapacity" env:"ASYNC_QUEUE_CAPACITY" validate:"min=1" default:"32"`

	// ThreadingEnabled controls whether the manager lock and wakeup primitive
	// provide real cross-goroutine synchronization. Disabling it is only
	// safe for single-goroutine use; corresponds to EM_ENABLE_THREADING.
	ThreadingEnabled bool `json:"threadingEnabled" yaml:"threadingEnabled" env:"THREADING_ENABLED" default:"true"`

	// DebugLog enables slog.LevelDebug trace lines for subscribe, publish,
	// and dispatch activity. Corresponds to EM_ENABLE_DEBUG.
	DebugLog bool `json:"debugLog" yaml:"debugLog" env:"DEBUG_LOG" default:"false"`

	// Logger receives structured log output. A nil Logger defaults to
	// defaultLogger, a text-format slog.Logger writing to os.Stderr. Not
	// serializable.
	Logger Logger `json:"-" yaml:"-"`

	// Allocator produces owned copies for PublishAsync. A nil Allocator
	// defaults to defaultAllocator. Not serializable.
	Allocator Allocator `json:"-" yaml:"-"`
}

// DefaultConfig returns the spec's documented defaults: 64 event types, 16
// subscribers per event, a 32-deep ring per priority, threading on, debug
// logging off.
func DefaultConfig() *Config {
	return &Config{
		MaxEventTypes:      64,
		MaxSubscribers:     16,
		AsyncQueueCapacity: 32,
		ThreadingEnabled:   true,
		DebugLog:           false,
	}
}

// Validate reports the first structural problem found in cfg, or nil if cfg
// is usable. New/NewWithConfig call this before allocating any state so a
// failed construction never leaves partial resources behind.
func (cfg *Config) Validate() error {
	if cfg.MaxEventTypes < 1 {
		return newError(CodeInvalidParam, "maxEventTypes must be >= 1, got %d", cfg.MaxEventTypes)
	}
	if cfg.MaxSubscribers < 1 {
		return newError(CodeInvalidParam, "maxSubscribers must be >= 1, got %d", cfg.MaxSubscribers)
	}
	if cfg.AsyncQueueCapacity < 1 {
		return newError(CodeInvalidParam, "asyncQueueCapacity must be >= 1, got %d", cfg.AsyncQueueCapacity)
	}
	return nil
}

func (cfg *Config) String() string {
	return fmt.Sprintf(
		"Config{MaxEventTypes:%d MaxSubscribers:%d AsyncQueueCapacity:%d ThreadingEnabled:%t DebugLog:%t}",
		cfg.MaxEventTypes, cfg.MaxSubscribers, cfg.AsyncQueueCapacity, cfg.ThreadingEnabled, cfg.DebugLog,
	)
}
