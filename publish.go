package evmgr

// PublishSync delivers eventID to its subscribers immediately on the calling
// goroutine. No payload copy is made: the caller guarantees payload outlives
// the call. Returns ErrInvalidParam for an out-of-range eventID. Succeeds
// with no callbacks invoked when the event has no subscribers.
func (m *Manager) PublishSync(eventID EventID, payload any) error {
	if !m.validEventID(eventID) {
		return ErrInvalidParam
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrManagerClosed
	}
	m.stats.EventsPublished++
	m.mu.Unlock()

	m.dispatch(eventID, payload)
	return nil
}

// PublishAsync enqueues eventID for later delivery by the event loop or a
// manual ProcessOne/ProcessAll drain. If payload is non-empty, the kernel
// allocates an isolated copy before returning so the caller may mutate or
// discard its original immediately; a nil or empty payload is passed
// through by reference, and the caller must guarantee it outlives delivery.
//
// Returns ErrInvalidParam for an out-of-range eventID or priority,
// ErrOutOfMemory if the configured Allocator fails, or ErrQueueFull if the
// target priority's ring is at capacity — in which case any copy already
// allocated is discarded so nothing leaks.
func (m *Manager) PublishAsync(eventID EventID, payload []byte, prio Priority) error {
	if !m.validEventID(eventID) || !prio.valid() {
		return ErrInvalidParam
	}

	node := queuedEvent{id: eventID}
	if len(payload) > 0 {
		cp, err := m.allocator(len(payload))
		if err != nil {
			return ErrOutOfMemory
		}
		copy(cp, payload)
		node.payload = cp
		node.owned = true
	} else {
		node.payload = payload
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrManagerClosed
	}
	if err := m.queues.enqueue(prio, node); err != nil {
		m.mu.Unlock()
		// The copy made above, if any, is simply dropped here: nothing
		// retains a reference to it once this function returns an error.
		return err
	}
	m.stats.EventsPublished++
	m.stats.AsyncQueueCurrent = uint32(m.queues.totalSize())
	if m.stats.AsyncQueueCurrent > m.stats.AsyncQueueMax {
		m.stats.AsyncQueueMax = m.stats.AsyncQueueCurrent
	}
	m.mu.Unlock()
	m.cond.Broadcast()

	if m.cfg.DebugLog {
		m.logger.Debug("published async", "event_id", eventID, "priority", prio, "bytes", len(payload))
	}
	return nil
}

// Publish is the generic entry point: it dispatches on ev.Mode to
// PublishSync (using ev.Payload) or PublishAsync (using ev.PayloadCopy and
// ev.Priority).
func (m *Manager) Publish(ev Event) error {
	switch ev.Mode {
	case ModeSync:
		return m.PublishSync(ev.ID, ev.Payload)
	case ModeAsync:
		return m.PublishAsync(ev.ID, ev.PayloadCopy, ev.Priority)
	default:
		return ErrInvalidParam
	}
}

// QueueSize returns the total number of pending asynchronous events across
// all three priorities.
func (m *Manager) QueueSize() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.queues.totalSize()
}

// ClearQueue discards every pending asynchronous event, releasing any owned
// payload copies they held. It is infallible once the Manager is open;
// closed managers simply have nothing left to clear.
func (m *Manager) ClearQueue() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queues.clear()
	m.stats.AsyncQueueCurrent = 0
	return nil
}
