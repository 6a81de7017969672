package evmgr

// Callback is the subscriber contract: it receives the event id, the payload
// (nil, a pass-through value, or an owned []byte copy — see PublishSync and
// PublishAsync), and the
// opaque user context supplied at Subscribe time. The kernel never
// interprets either payload or userContext.
type Callback func(eventID EventID, payload any, userContext any)

// SubscriberKey identifies a subscriber for duplicate-detection and
// Unsubscribe purposes. Go func values are not comparable, so unlike the
// source kernel's em_callback_t pointer equality, this package asks the
// caller for an explicit comparable key (a string name is the common case).
// Subscribing the same (EventID, SubscriberKey) pair twice is idempotent.
type SubscriberKey string

// Mode selects the delivery discipline for the generic Publish entry point.
type Mode int

const (
	// ModeSync delivers on the publisher's goroutine before Publish returns.
	ModeSync Mode = iota
	// ModeAsync enqueues for later delivery by the event loop or a manual
	// drain (ProcessOne/ProcessAll).
	ModeAsync
)

// Event is a self-contained publish descriptor for the generic Publish entry
// point, the Go analogue of em_event_t. Mode selects whether Publish routes
// to PublishSync (Payload is passed through verbatim) or PublishAsync
// (PayloadCopy, if non-empty, is deep-copied by the kernel).
type Event struct {
	ID          EventID
	Mode        Mode
	Priority    Priority
	Payload     any    // used verbatim for ModeSync
	PayloadCopy []byte // copied by the kernel for ModeAsync
}
