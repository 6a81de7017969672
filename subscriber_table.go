package evmgr

// subscriber is one tuple { callback, opaque user context, priority, key }
// in a subscriberTable. The key field is what "the same callback value" is
// keyed on, since Go func values are not comparable (see SubscriberKey).
type subscriber struct {
	key     SubscriberKey
	handler Callback
	user    any
	prio    Priority
}

// subscriberTable is the bounded, per-event-id ordered set of subscribers
// described in the spec's Subscriber Table component. Unlike the source
// kernel's fixed array-with-gaps, this rendering compacts on removal: a
// slice with no tombstoned slots is the idiomatic Go way to realize "active
// slots in index order are sorted", since there is no fixed-capacity array
// to preserve indices into.
type subscriberTable struct {
	slots  []subscriber
	sorted bool
}

func newSubscriberTable() *subscriberTable {
	return &subscriberTable{sorted: true}
}

// count returns the number of active (here: all, since compaction removes
// inactive slots immediately) subscribers in the table.
func (t *subscriberTable) count() int {
	return len(t.slots)
}

func (t *subscriberTable) find(key SubscriberKey) int {
	for i := range t.slots {
		if t.slots[i].key == key {
			return i
		}
	}
	return -1
}

// subscribe adds (key, handler, user, prio) to the table. Returns
// (added=true) if a new slot was populated, (added=false, nil) if the
// subscription was already present (idempotent no-op success), or
// ErrMaxSubscribers if the table is at capacity.
func (t *subscriberTable) subscribe(key SubscriberKey, handler Callback, user any, prio Priority, maxSubscribers int) (added bool, err error) {
	if idx := t.find(key); idx >= 0 {
		return false, nil
	}
	if len(t.slots) >= maxSubscribers {
		return false, ErrMaxSubscribers
	}
	t.slots = append(t.slots, subscriber{key: key, handler: handler, user: user, prio: prio})
	t.sorted = false
	return true, nil
}

// unsubscribe removes the slot for key. Returns ErrNotFound if absent.
func (t *subscriberTable) unsubscribe(key SubscriberKey) error {
	idx := t.find(key)
	if idx < 0 {
		return ErrNotFound
	}
	// Compaction preserves relative order of the remaining slots, which is
	// sufficient to keep a sorted sequence sorted (removal never reorders).
	t.slots = append(t.slots[:idx], t.slots[idx+1:]...)
	return nil
}

// unsubscribeAll clears every slot in the table.
func (t *subscriberTable) unsubscribeAll() {
	t.slots = nil
	t.sorted = true
}

// ensureSorted performs a stable insertion sort over the slots by priority,
// deferred from subscribe time to first-dispatch time as the spec requires.
// Insertion sort is the reference choice for a small bounded collection and
// is trivially stable.
func (t *subscriberTable) ensureSorted() {
	if t.sorted {
		return
	}
	for i := 1; i < len(t.slots); i++ {
		cur := t.slots[i]
		j := i - 1
		for j >= 0 && t.slots[j].prio > cur.prio {
			t.slots[j+1] = t.slots[j]
			j--
		}
		t.slots[j+1] = cur
	}
	t.sorted = true
}

// snapshot returns a copy of the slots in their current (sorted) order,
// suitable for iteration outside the manager lock.
func (t *subscriberTable) snapshot() []subscriber {
	t.ensureSorted()
	out := make([]subscriber, len(t.slots))
	copy(out, t.slots)
	return out
}
