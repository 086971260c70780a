// Package journal provides an audit trail of event firings. A Recorder
// observes firings through an ordinary handler and appends one Entry per
// firing to a Store; the core dispatch stays free of persistence concerns.
// The journal records what fired; it does not replay and it does not
// persist handler registrations.
package journal

import (
	"errors"
	"time"
)

// Entry is one recorded firing.
type Entry struct {
	// ID uniquely identifies the entry.
	ID string

	// EventName is the display name of the event the firing reported.
	EventName string

	// Caller is the firing's caller rendered as a string, empty when the
	// firing carried none.
	Caller string

	// Data is the firing payload serialized as JSON, nil when the firing
	// carried none.
	Data []byte

	// Time is the firing timestamp.
	Time time.Time

	// Cancelled records whether the firing had been cancelled by the time
	// the recorder observed it.
	Cancelled bool

	// Sequence is a store-assigned monotonically increasing position.
	Sequence int
}

// Store persists journal entries. Implementations must be safe for
// concurrent use.
type Store interface {
	// Append stores an entry, assigning its Sequence (and ID when empty).
	Append(entry *Entry) error

	// Get retrieves an entry by ID.
	// Returns ErrNotFound if no such entry exists.
	Get(id string) (*Entry, error)

	// List returns all entries for an event name, ordered by sequence.
	// Returns an empty slice (not an error) for an unknown name.
	List(eventName string) ([]*Entry, error)

	// ListAll returns up to limit entries across all events, ordered by
	// sequence. limit <= 0 means no limit.
	ListAll(limit int) ([]*Entry, error)

	// CountByEvent returns entry counts grouped by event name.
	CountByEvent() (map[string]int, error)

	// Purge removes all entries for an event name.
	// Purging an unknown name is a no-op.
	Purge(eventName string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Sentinel errors for journal operations.
var (
	// ErrNotFound indicates an entry doesn't exist.
	ErrNotFound = errors.New("journal entry not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("journal store closed")
)
