package collection

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Key identifies one cached collection. Keys are hierarchical: KeyOf("interventions",
// pathID) lives below KeyOf("interventions"), and invalidating a key
// invalidates every key below it.
type Key string

// KeyOf builds a key from its parts. Parts are path-escaped so a part
// containing "/" cannot collide with a deeper key.
func KeyOf(parts ...string) Key {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = url.PathEscape(p)
	}
	return Key(strings.Join(escaped, "/"))
}

// Within reports whether k is prefix itself or a key below it.
func (k Key) Within(prefix Key) bool {
	if k == prefix {
		return true
	}
	return strings.HasPrefix(string(k), string(prefix)+"/")
}

// Fetcher loads the full collection for a key.
type Fetcher[T any] func(ctx context.Context) ([]T, error)

// Snapshot is the cached state of one collection at a point in time.
type Snapshot[T any] struct {
	Key       Key
	Items     []T
	FetchedAt time.Time
	// Version increases every time Items is replaced.
	Version   uint64
	IsStale   bool
	IsLoading bool
	// Err is the most recent fetch failure (*FetchError); Items still holds
	// the last good data.
	Err error
}

// HasData reports whether the snapshot carries items from a fetch or from a
// persisted copy.
func (s Snapshot[T]) HasData() bool { return s.Version > 0 }

// ErrStaleWriteDiscarded marks a fetch response dropped because a newer fetch
// for the same key had started. It is only ever reported to observers.
var ErrStaleWriteDiscarded = errors.New("stale fetch response discarded")

// ErrClosed is returned by blocking calls on a closed client.
var ErrClosed = errors.New("collection client closed")

// FetchError wraps a fetcher failure for one key.
type FetchError struct {
	Key Key
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Key, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// MutationError wraps a failed mutation. No key was invalidated.
type MutationError struct {
	Err error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("mutation failed: %v", e.Err)
}

func (e *MutationError) Unwrap() error { return e.Err }

// EventKind classifies client events.
type EventKind string

const (
	EventFetchStarted   EventKind = "fetch_started"
	EventFetchSucceeded EventKind = "fetch_succeeded"
	EventFetchFailed    EventKind = "fetch_failed"
	EventStaleDiscarded EventKind = "stale_discarded"
	EventInvalidated    EventKind = "invalidated"
	EventHydrated       EventKind = "hydrated"
	EventCollected      EventKind = "collected"
)

// Event is reported to the client's observer. Generation is the fetch
// generation the event belongs to, when there is one.
type Event struct {
	Kind       EventKind
	Key        Key
	Generation uint64
	Err        error
}
