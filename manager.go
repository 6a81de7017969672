package evmgr

import (
	"sync"

	"github.com/google/uuid"
)

// Manager is the event manager kernel: subscriber tables, a priority queue
// set, statistics, and the synchronization primitives that let producers and
// the event loop operate safely from different goroutines. The zero value
// is not usable; construct with New or NewWithConfig.
//
// A Manager is created, used concurrently, and closed exactly once. No
// operation may be invoked after Close begins; callers are responsible for
// preventing that, mirroring the source kernel's handle-invalidation rule.
type Manager struct {
	mu   sync.Locker
	cond *sync.Cond

	cfg       Config
	logger    Logger
	allocator Allocator

	// InstanceID identifies this manager for log correlation, grounded on
	// the teacher's durableSub.id convention of stamping a uuid on every
	// addressable object rather than relying on pointer identity in logs.
	InstanceID string

	tables map[EventID]*subscriberTable
	queues *priorityQueueSet
	stats  Statistics

	running bool
	closed  bool
}

// noopLocker is a sync.Locker that performs no synchronization, the Go
// analogue of the source kernel building without EM_ENABLE_THREADING: the
// mutex/cond calls compile away to nothing. Selected when
// Config.ThreadingEnabled is false; safe only when the Manager is never
// touched from more than one goroutine.
type noopLocker struct{}

func (noopLocker) Lock()   {}
func (noopLocker) Unlock() {}

// New constructs a Manager using DefaultConfig.
func New() (*Manager, error) {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig constructs a Manager from cfg. It validates cfg before
// allocating any state, so a failed construction (nil Manager, non-nil
// error) leaves nothing to clean up — the Go analogue of em_create rolling
// back partial allocations on failure.
func NewWithConfig(cfg *Config) (*Manager, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = defaultLogger()
	}
	allocator := cfg.Allocator
	if allocator == nil {
		allocator = defaultAllocator
	}

	var locker sync.Locker
	if cfg.ThreadingEnabled {
		locker = &sync.Mutex{}
	} else {
		locker = noopLocker{}
	}

	m := &Manager{
		mu:         locker,
		cfg:        *cfg,
		logger:     logger,
		allocator:  allocator,
		InstanceID: uuid.New().String(),
		tables:     make(map[EventID]*subscriberTable),
		queues:     newPriorityQueueSet(cfg.AsyncQueueCapacity),
	}
	m.cond = sync.NewCond(m.mu)

	if cfg.DebugLog {
		m.logger.Debug("event manager created", "instance_id", m.InstanceID, "config", cfg.String())
	}
	return m, nil
}

// validEventID reports whether id lies in [0, MaxEventTypes).
func (m *Manager) validEventID(id EventID) bool {
	return int(id) < m.cfg.MaxEventTypes
}

// MaxEventTypes returns the configured upper bound on distinct event ids,
// letting collaborators such as ambient.CloudEventBridge size their own
// bookkeeping to match rather than risk drifting from it.
func (m *Manager) MaxEventTypes() int {
	return m.cfg.MaxEventTypes
}

// tableFor returns the subscriber table for id, creating it on first use.
// Callers must hold m.mu.
func (m *Manager) tableFor(id EventID) *subscriberTable {
	t, ok := m.tables[id]
	if !ok {
		t = newSubscriberTable()
		m.tables[id] = t
	}
	return t
}

// Close stops any running event loop, releases every owned payload copy
// still queued, and invalidates the handle. It is idempotent and safe to
// call more than once, matching the teacher's durableSub.Cancel convention.
// After Close, the operations that can fail return ErrManagerClosed;
// ClearQueue and StopLoop still succeed, and QueueSize, SubscriberCount and
// HasSubscribers still report values.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	m.running = false
	m.queues.clear()
	m.closed = true
	m.cond.Broadcast()
	if m.cfg.DebugLog {
		m.logger.Debug("event manager closed", "instance_id", m.InstanceID)
	}
	return nil
}
