// Package ambient adapts the evmgr kernel to collaborators the kernel
// itself stays deliberately unaware of: CloudEvents-typed producers, zap
// structured logging, and Prometheus metrics export. None of these are part
// of the kernel's data model — the kernel's Payload stays untyped (any /
// []byte) so it can ship as a dependency-free library — but a production
// embedder commonly wants one of them, so each is a thin, optional bridge.
package ambient

import (
	"fmt"
	"sync"

	cloudevents "github.com/cloudevents/sdk-go/v2/event"

	"github.com/dreamguest/evmgr"
)

// CloudEventBridge maps CloudEvents type strings to evmgr.EventID values and
// routes cloudevents.Event values into a Manager's Publish/PublishAsync
// entry points. This is the "ergonomic layer" the kernel's design notes
// describe: a strongly typed variant-based event enum per application,
// layered above the untyped kernel.
type CloudEventBridge struct {
	manager *evmgr.Manager

	mu      sync.RWMutex
	names   map[string]evmgr.EventID
	next    evmgr.EventID
	maxType evmgr.EventID
}

// NewCloudEventBridge wires bridge to manager. The bridge reads its
// registration bound directly from manager.MaxEventTypes(), so it can never
// hand out an EventID the manager itself would reject with ErrInvalidParam.
func NewCloudEventBridge(manager *evmgr.Manager) *CloudEventBridge {
	return &CloudEventBridge{
		manager: manager,
		names:   make(map[string]evmgr.EventID),
		maxType: evmgr.EventID(manager.MaxEventTypes()),
	}
}

// RegisterEventName assigns a stable evmgr.EventID to a CloudEvents type
// string, such as "user.created". Registering the same name twice returns
// the same id.
func (b *CloudEventBridge) RegisterEventName(name string) (evmgr.EventID, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if id, ok := b.names[name]; ok {
		return id, nil
	}
	if b.next >= b.maxType {
		return 0, fmt.Errorf("cloudevents bridge: no room to register type %q: %w", name, evmgr.ErrMaxSubscribers)
	}
	id := b.next
	b.names[name] = id
	b.next++
	return id, nil
}

// EventID looks up the id previously assigned to name by RegisterEventName.
func (b *CloudEventBridge) EventID(name string) (evmgr.EventID, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	id, ok := b.names[name]
	return id, ok
}

// PublishSync delivers ev synchronously, using ev.Data() as the payload.
// ev.Type() must have been registered with RegisterEventName first.
func (b *CloudEventBridge) PublishSync(ev cloudevents.Event) error {
	id, ok := b.EventID(ev.Type())
	if !ok {
		return fmt.Errorf("cloudevents bridge: unregistered event type %q", ev.Type())
	}
	return b.manager.PublishSync(id, ev.Data())
}

// PublishAsync enqueues ev for asynchronous delivery at prio, copying
// ev.Data() into the kernel's owned buffer so the caller may reuse or
// discard ev immediately after this call returns.
func (b *CloudEventBridge) PublishAsync(ev cloudevents.Event, prio evmgr.Priority) error {
	id, ok := b.EventID(ev.Type())
	if !ok {
		return fmt.Errorf("cloudevents bridge: unregistered event type %q", ev.Type())
	}
	return b.manager.PublishAsync(id, ev.Data(), prio)
}
