package syncmap

import (
	"context"
	"document-manager/core"
	"document-manager/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentStore(t *testing.T) {
	testutil.RunStoreSuite(t, func(opts ...core.StoreOption) core.DocumentStore {
		return NewDocumentStore(opts...)
	})
}

func TestSaveRetriesOnIDCollision(t *testing.T) {
	ctx := context.Background()
	ids := []string{"a", "a", "b"}
	store := NewDocumentStore(core.WithIDGenerator(func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}))

	first := store.Save(ctx, testutil.BuildDocument())
	second := store.Save(ctx, testutil.BuildDocument())

	assert.Equal(t, "a", first.ID)
	assert.Equal(t, "b", second.ID)
	got, ok := store.FindByID(ctx, "a")
	require.True(t, ok)
	assert.Equal(t, first, got)
}
