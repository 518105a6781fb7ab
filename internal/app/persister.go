package app

import (
	"context"
	"encoding/json"

	"github.com/hrcore/competency/internal/collection"
	"github.com/hrcore/competency/internal/store"
)

// snapshotPersister stores collection snapshots in the local database.
type snapshotPersister struct {
	repo store.SnapshotRepo
}

// NewPersister adapts a SnapshotRepo to the collection client.
func NewPersister(repo store.SnapshotRepo) collection.Persister {
	return &snapshotPersister{repo: repo}
}

func (p *snapshotPersister) Load(ctx context.Context, key collection.Key) (*collection.Persisted, error) {
	snap, err := p.repo.Get(ctx, string(key))
	if err != nil || snap == nil {
		return nil, err
	}
	return &collection.Persisted{Items: snap.Items, FetchedAt: snap.FetchedAt}, nil
}

func (p *snapshotPersister) Save(ctx context.Context, key collection.Key, snap *collection.Persisted) error {
	var items []json.RawMessage
	if err := json.Unmarshal(snap.Items, &items); err != nil {
		return err
	}
	return p.repo.Save(ctx, &store.CollectionSnapshot{
		Key:       string(key),
		Items:     snap.Items,
		ItemCount: len(items),
		FetchedAt: snap.FetchedAt,
	})
}
