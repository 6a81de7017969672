package evmgr

// dispatch delivers a single event to its currently-registered subscribers,
// implementing the Dispatcher component's contract: acquire the lock, sort
// the subscriber table if needed, snapshot the active slots, increment
// EventsProcessed, release the lock, then invoke callbacks outside the lock.
//
// Callbacks are untrusted: they may subscribe, unsubscribe, or publish
// (sync or async) reentrantly. Taking the snapshot under the lock and
// invoking outside it is what makes that safe — no iterator is ever live
// while a callback runs, and no callback runs while the lock is held.
// Subscriptions added during this call's iteration do not see this event.
func (m *Manager) dispatch(eventID EventID, payload any) {
	m.mu.Lock()
	table, ok := m.tables[eventID]
	var snap []subscriber
	if ok {
		snap = table.snapshot()
	}
	m.stats.EventsProcessed++
	m.mu.Unlock()

	for _, sub := range snap {
		if sub.handler == nil {
			continue
		}
		sub.handler(eventID, payload, sub.user)
	}
}
