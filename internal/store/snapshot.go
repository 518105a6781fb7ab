package store

import (
	"context"
	"fmt"
	"time"

	"github.com/hrcore/competency/ent"
	"github.com/hrcore/competency/ent/collectionsnapshot"
)

// snapshotRepo implements SnapshotRepo using ent.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *CollectionSnapshot) error {
	savedAt := snap.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	n, err := r.client.CollectionSnapshot.Update().
		Where(collectionsnapshot.KeyEQ(snap.Key)).
		SetItems(string(snap.Items)).
		SetItemCount(snap.ItemCount).
		SetFetchedAt(snap.FetchedAt.UTC()).
		SetSavedAt(savedAt.UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", snap.Key, err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.CollectionSnapshot.Create().
		SetKey(snap.Key).
		SetItems(string(snap.Items)).
		SetItemCount(snap.ItemCount).
		SetFetchedAt(snap.FetchedAt.UTC()).
		SetSavedAt(savedAt.UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", snap.Key, err)
	}
	return nil
}

func (r *snapshotRepo) Get(ctx context.Context, key string) (*CollectionSnapshot, error) {
	row, err := r.client.CollectionSnapshot.Query().
		Where(collectionsnapshot.KeyEQ(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query snapshot %s: %w", key, err)
	}
	snap := toSnapshot(row)
	return &snap, nil
}

func (r *snapshotRepo) List(ctx context.Context) ([]CollectionSnapshot, error) {
	rows, err := r.client.CollectionSnapshot.Query().
		Select(
			collectionsnapshot.FieldKey,
			collectionsnapshot.FieldItemCount,
			collectionsnapshot.FieldFetchedAt,
			collectionsnapshot.FieldSavedAt,
		).
		Order(collectionsnapshot.ByKey()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	out := make([]CollectionSnapshot, 0, len(rows))
	for _, row := range rows {
		out = append(out, toSnapshot(row))
	}
	return out, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, olderThan time.Time) (int, error) {
	n, err := r.client.CollectionSnapshot.Delete().
		Where(collectionsnapshot.FetchedAtLT(olderThan.UTC())).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("prune snapshots: %w", err)
	}
	return n, nil
}

func (r *snapshotRepo) Delete(ctx context.Context, key string) (int, error) {
	n, err := r.client.CollectionSnapshot.Delete().
		Where(collectionsnapshot.Or(
			collectionsnapshot.KeyEQ(key),
			collectionsnapshot.KeyHasPrefix(key+"/"),
		)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete snapshots %s: %w", key, err)
	}
	return n, nil
}

func toSnapshot(row *ent.CollectionSnapshot) CollectionSnapshot {
	snap := CollectionSnapshot{
		ID:        row.ID,
		Key:       row.Key,
		ItemCount: row.ItemCount,
		FetchedAt: row.FetchedAt,
		SavedAt:   row.SavedAt,
	}
	if row.Items != "" {
		snap.Items = []byte(row.Items)
	}
	return snap
}
