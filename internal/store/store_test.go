package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hrcore/competency/ent/apirequestevent"
	"github.com/hrcore/competency/ent/collectionsnapshot"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenExposesClient(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.SnapshotRepo().Save(ctx, &CollectionSnapshot{Key: "jobs", Items: []byte(`[1]`), ItemCount: 1, FetchedAt: time.Now()}); err != nil {
		t.Fatalf("save: %v", err)
	}
	n, err := s.Client().CollectionSnapshot.Query().
		Where(collectionsnapshot.KeyEQ("jobs")).
		Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("snapshots = %d, want 1", n)
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
		{"busy_timeout", "5000"},
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestFileDatabaseUsesWAL(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "competency.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "competency.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	err = s.SnapshotRepo().Save(ctx, &CollectionSnapshot{Key: "jobs", Items: []byte(`[]`), FetchedAt: time.Now()})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	s.Close()

	// Migration must be a no-op on an existing schema.
	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	snap, err := s.SnapshotRepo().Get(ctx, "jobs")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if snap == nil {
		t.Fatal("snapshot lost after reopen")
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{collectionsnapshot.Table, apirequestevent.Table} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
	}

	var idx string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='index' AND name='apirequestevent_endpoint'",
	).Scan(&idx)
	if err != nil {
		t.Fatalf("endpoint index missing: %v", err)
	}
}

func TestSnapshotSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Get(ctx, "questions")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	fetched := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	err = repo.Save(ctx, &CollectionSnapshot{
		Key:       "questions",
		Items:     []byte(`[{"id":"q1"}]`),
		ItemCount: 1,
		FetchedAt: fetched,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Get(ctx, "questions")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if snap == nil {
		t.Fatal("expected snapshot")
	}
	if string(snap.Items) != `[{"id":"q1"}]` {
		t.Errorf("items = %s", snap.Items)
	}
	if !snap.FetchedAt.Equal(fetched) {
		t.Errorf("fetched_at = %v, want %v", snap.FetchedAt, fetched)
	}
	if snap.SavedAt.IsZero() {
		t.Error("saved_at not set")
	}
}

func TestSnapshotSaveReplaces(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i, items := range []string{`[1]`, `[1,2]`} {
		err := repo.Save(ctx, &CollectionSnapshot{
			Key:       "jobs",
			Items:     []byte(items),
			ItemCount: i + 1,
			FetchedAt: time.Now(),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("snapshots = %d, want 1", len(list))
	}
	if list[0].ItemCount != 2 {
		t.Errorf("item_count = %d, want 2", list[0].ItemCount)
	}
	if list[0].Items != nil {
		t.Errorf("list returned items %s, want none", list[0].Items)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		err := repo.Save(ctx, &CollectionSnapshot{
			Key:       fmt.Sprintf("k%d", i),
			Items:     []byte(`[]`),
			FetchedAt: base.Add(time.Duration(i) * 24 * time.Hour),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	n, err := repo.Prune(ctx, base.Add(3*24*time.Hour))
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if n != 3 {
		t.Errorf("pruned = %d, want 3", n)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Key != "k3" || list[1].Key != "k4" {
		t.Errorf("remaining = %+v, want k3 and k4", list)
	}
}

func TestSnapshotDeleteCoversKeysBelow(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for _, k := range []string{"interventions", "interventions/p1", "interventions/p2", "interventionsX", "paths"} {
		if err := repo.Save(ctx, &CollectionSnapshot{Key: k, Items: []byte(`[]`), FetchedAt: time.Now()}); err != nil {
			t.Fatalf("save %s: %v", k, err)
		}
	}

	n, err := repo.Delete(ctx, "interventions")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 3 {
		t.Errorf("deleted = %d, want 3", n)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var keys []string
	for _, snap := range list {
		keys = append(keys, snap.Key)
	}
	if strings.Join(keys, ",") != "interventionsX,paths" {
		t.Errorf("remaining keys = %v", keys)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}

	// A second counter on the same database continues the sequence.
	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}
	seq, err := sc.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if seq != 6 {
		t.Errorf("seq = %d, want 6", seq)
	}
}
