// Package storage persists analytics events. The postgres store is the
// production backend; the memory store backs tests and degraded mode
// when the database is unreachable.
package storage

import "context"

// EventStore persists serialized analytics events.
type EventStore interface {
	// SaveEvent stores one JSON-encoded event.
	SaveEvent(ctx context.Context, payload []byte) error
	// EventsCount returns the total number of stored events.
	EventsCount(ctx context.Context) (int64, error)
	Close() error
}
