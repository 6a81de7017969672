// Package evmgr is an embeddable, in-process publish/subscribe event
// manager. Producers publish events synchronously (delivered on the calling
// goroutine) or asynchronously (queued by priority for later delivery by
// RunLoop or a manual ProcessOne/ProcessAll drain). Subscribers register a
// Callback per event id at one of three priorities; dispatch always visits
// subscribers in priority order, with subscription order breaking ties.
//
// The manager is safe for concurrent use from multiple goroutines: every
// table and queue mutation happens under a single coarse lock, and
// callbacks are always invoked outside that lock from a point-in-time
// snapshot, so a callback is free to subscribe, unsubscribe, or publish
// reentrantly without deadlocking.
//
// There is no cross-process transport, no persistence across a restart, and
// no per-subscriber filtering beyond event identity — this package is a
// single-process primitive, not a message broker.
package evmgr
