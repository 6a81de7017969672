package evmgr

import "context"

// ProcessOne dequeues and dispatches a single pending asynchronous event,
// scanning priorities HIGH, then NORMAL, then LOW and taking the first
// non-empty ring. Returns ErrQueueEmpty if all three rings are empty.
//
// Dispatch and the release of the node's owned payload copy both happen
// outside the manager lock, matching the Dispatcher contract.
func (m *Manager) ProcessOne() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrManagerClosed
	}
	id, node, ok := m.queues.dequeueNext()
	if !ok {
		m.mu.Unlock()
		return ErrQueueEmpty
	}
	m.stats.AsyncQueueCurrent = uint32(m.queues.totalSize())
	m.mu.Unlock()

	var payload any
	if node.payload != nil {
		payload = node.payload
	}
	m.dispatch(id, payload)
	// node.payload's backing array becomes unreachable once this function
	// returns, releasing the owned copy exactly once — the dequeue that
	// produced node already cleared the ring's own reference to it.
	return nil
}

// ProcessAll calls ProcessOne repeatedly until it returns ErrQueueEmpty and
// reports how many events were drained.
func (m *Manager) ProcessAll() (int, error) {
	drained := 0
	for {
		err := m.ProcessOne()
		if err == nil {
			drained++
			continue
		}
		if err == ErrQueueEmpty {
			return drained, nil
		}
		return drained, err
	}
}

// RunLoop blocks, repeatedly draining the asynchronous queues and parking on
// the manager's wakeup primitive between bursts, until StopLoop is called or
// ctx is cancelled. Cancellation via ctx is layered on top of StopLoop, not
// a replacement for it: both converge on the same running flag and
// broadcast.
func (m *Manager) RunLoop(ctx context.Context) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrManagerClosed
	}
	m.running = true
	m.mu.Unlock()

	// Translate ctx cancellation into a StopLoop call so the single wait
	// loop below only ever has one wakeup source to reason about.
	stopOnCancel := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = m.StopLoop()
		case <-stopOnCancel:
		}
	}()
	defer close(stopOnCancel)

	for {
		m.mu.Lock()
		for m.running && m.queues.totalSize() == 0 && !m.closed {
			m.cond.Wait()
		}
		stillRunning := m.running && !m.closed
		m.mu.Unlock()

		if !stillRunning {
			return nil
		}

		if _, err := m.ProcessAll(); err != nil && err != ErrManagerClosed {
			return err
		}
	}
}

// StopLoop signals a running RunLoop to exit once the drain it is currently
// running (a ProcessAll of every queued event) has finished. It is safe to call whether or not a loop is
// actually running.
func (m *Manager) StopLoop() error {
	m.mu.Lock()
	m.running = false
	m.mu.Unlock()
	m.cond.Broadcast()
	return nil
}
