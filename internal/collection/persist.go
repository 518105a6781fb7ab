package collection

import (
	"context"
	"encoding/json"
	"time"
)

// Persisted is a stored copy of a collection snapshot.
type Persisted struct {
	Items     json.RawMessage
	FetchedAt time.Time
}

// Persister stores snapshots between runs so a new process can show the last
// known items while its first fetch is in flight.
type Persister interface {
	// Load returns the stored snapshot for key, or nil when there is none.
	Load(ctx context.Context, key Key) (*Persisted, error)

	// Save replaces the stored snapshot for key.
	Save(ctx context.Context, key Key, p *Persisted) error
}
