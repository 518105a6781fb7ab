package screen

import (
	"context"
	"testing"
	"time"

	"github.com/hrcore/competency/internal/collection"
)

func TestFeedDeliversChanges(t *testing.T) {
	cache := collection.NewClient(collection.Options{})
	defer cache.Close()

	key := collection.KeyOf("jobs")
	f, snap := Watch(cache, key, func(context.Context) ([]string, error) {
		return []string{"engineer"}, nil
	})
	defer f.Close()

	if !snap.IsLoading {
		t.Error("expected first subscription to start loading")
	}

	msg := f.Wait()()
	changed, ok := msg.(ChangedMsg)
	if !ok {
		t.Fatalf("expected ChangedMsg, got %T", msg)
	}
	if changed.Source != f {
		t.Error("expected message to name its feed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := collection.Await[string](ctx, cache, key); err != nil {
		t.Fatalf("await: %v", err)
	}
	got := f.Snapshot()
	if len(got.Items) != 1 || got.Items[0] != "engineer" {
		t.Errorf("unexpected snapshot items %v", got.Items)
	}
}

func TestFeedCloseReleasesWait(t *testing.T) {
	cache := collection.NewClient(collection.Options{})
	defer cache.Close()

	f, _ := Watch(cache, collection.KeyOf("jobs"), func(context.Context) ([]string, error) {
		return nil, nil
	})
	// Drain the notification from the initial fetch, if it already arrived.
	select {
	case <-f.signal:
	case <-time.After(time.Second):
	}

	wait := f.Wait()
	f.Close()
	f.Close()

	if msg := wait(); msg != nil {
		t.Errorf("expected nil after close, got %T", msg)
	}
}
