package evmgr

// Subscribe registers handler under key for eventID at the given priority.
// A nil handler, an out-of-range eventID, or an out-of-range priority
// returns ErrInvalidParam with no state change.
//
// Subscribing the same (eventID, key) pair a second time is a no-op success:
// duplicate subscription is idempotent and does not alter priority or
// userContext (see SubscriberKey for why Go keys subscriptions explicitly
// rather than by callback pointer equality).
//
// Returns ErrMaxSubscribers if eventID's table already holds MaxSubscribers
// active entries.
func (m *Manager) Subscribe(eventID EventID, key SubscriberKey, handler Callback, userContext any, prio Priority) error {
	if handler == nil || !m.validEventID(eventID) || !prio.valid() {
		return ErrInvalidParam
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrManagerClosed
	}

	table := m.tableFor(eventID)
	added, err := table.subscribe(key, handler, userContext, prio, m.cfg.MaxSubscribers)
	if err != nil {
		return err
	}
	if added {
		m.stats.SubscribersTotal++
	}
	if m.cfg.DebugLog {
		m.logger.Debug("subscribed", "event_id", eventID, "key", key, "priority", prio, "added", added)
	}
	return nil
}

// Unsubscribe removes the (eventID, key) subscription. Returns ErrNotFound
// if no active slot matches.
func (m *Manager) Unsubscribe(eventID EventID, key SubscriberKey) error {
	if !m.validEventID(eventID) {
		return ErrInvalidParam
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrManagerClosed
	}

	table, ok := m.tables[eventID]
	if !ok {
		return ErrNotFound
	}
	if err := table.unsubscribe(key); err != nil {
		return err
	}
	m.stats.SubscribersTotal--
	if m.cfg.DebugLog {
		m.logger.Debug("unsubscribed", "event_id", eventID, "key", key)
	}
	return nil
}

// UnsubscribeAll removes every subscription registered for eventID.
func (m *Manager) UnsubscribeAll(eventID EventID) error {
	if !m.validEventID(eventID) {
		return ErrInvalidParam
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrManagerClosed
	}

	table, ok := m.tables[eventID]
	if !ok {
		return nil
	}
	removed := table.count()
	table.unsubscribeAll()
	m.stats.SubscribersTotal -= uint32(removed)
	return nil
}

// SubscriberCount returns the number of active subscribers for eventID, or
// -1 if eventID is out of range.
func (m *Manager) SubscriberCount(eventID EventID) int {
	if !m.validEventID(eventID) {
		return -1
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	table, ok := m.tables[eventID]
	if !ok {
		return 0
	}
	return table.count()
}

// HasSubscribers reports whether eventID currently has at least one active
// subscriber.
func (m *Manager) HasSubscribers(eventID EventID) bool {
	return m.SubscriberCount(eventID) > 0
}
