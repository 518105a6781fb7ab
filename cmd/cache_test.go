package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrcore/competency/internal/app"
	"github.com/hrcore/competency/internal/collection"
	"github.com/hrcore/competency/internal/store"
)

func TestCacheDeleteRemovesKeysBelow(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "competency.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	cache := collection.NewClient(collection.Options{})
	t.Cleanup(cache.Close)

	ctx := context.Background()
	repo := s.SnapshotRepo()
	for _, k := range []string{"interventions/p1", "interventions/p2", "paths"} {
		require.NoError(t, repo.Save(ctx, &store.CollectionSnapshot{Key: k, Items: []byte(`[]`), FetchedAt: time.Now()}))
	}

	var out bytes.Buffer
	c := &cobra.Command{RunE: cacheDeleteCmd.RunE}
	c.SetContext(withHolder(ctx, &envHolder{env: &app.Env{Store: s, Cache: cache}}))
	c.SetOut(&out)
	require.NoError(t, c.RunE(c, []string{"interventions/"}))
	assert.Equal(t, "Removed 2 snapshot(s).\n", out.String())

	left, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "paths", left[0].Key)
}
