package testutil

import (
	"context"
	"document-manager/core"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewStoreFunc builds an empty store for one subtest.
type NewStoreFunc func(opts ...core.StoreOption) core.DocumentStore

// Seeded is a store holding the three documents every suite case starts from.
type Seeded struct {
	Store core.DocumentStore
	Docs  []core.Document
}

// Seed saves three documents. The first and third carry ids the store has never issued.
func Seed(t *testing.T, store core.DocumentStore) Seeded {
	t.Helper()
	ctx := context.Background()
	inputs := []core.Document{
		{ID: "1", Title: "1Title", Content: "1Content cur", Author: core.Author{ID: "1", Name: "Taras"}, Created: time.Now()},
		{Title: "2Title", Content: "2Content map", Author: core.Author{ID: "2", Name: "Vladyslav"}, Created: time.Now()},
		{ID: "2", Title: "3Title", Content: "3Content bug", Author: core.Author{ID: "3", Name: "Andrey"}, Created: time.Now()},
	}
	seeded := Seeded{Store: store}
	for _, in := range inputs {
		seeded.Docs = append(seeded.Docs, store.Save(ctx, in))
	}
	return seeded
}

// RunStoreSuite checks the DocumentStore contract against the backend built by newStore.
func RunStoreSuite(t *testing.T, newStore NewStoreFunc) {
	ctx := context.Background()

	t.Run("SaveWithoutID", func(t *testing.T) {
		s := Seed(t, newStore())
		doc := BuildDocument()
		doc.ID = ""

		before := time.Now()
		saved := s.Store.Save(ctx, doc)

		require.NotEmpty(t, saved.ID)
		for _, d := range s.Docs {
			assert.NotEqual(t, d.ID, saved.ID)
		}
		assert.Equal(t, doc.Title, saved.Title)
		assert.Equal(t, doc.Content, saved.Content)
		assert.Equal(t, doc.Author, saved.Author)
		assert.WithinRange(t, saved.Created, before, time.Now())
	})

	t.Run("SaveUnknownID", func(t *testing.T) {
		s := Seed(t, newStore())
		doc := BuildDocument()
		doc.Created = time.Now().Add(-time.Hour)

		saved := s.Store.Save(ctx, doc)

		require.NotEmpty(t, saved.ID)
		assert.NotEqual(t, doc.ID, saved.ID)
		assert.Equal(t, doc.Title, saved.Title)
		assert.Equal(t, doc.Content, saved.Content)
		assert.Equal(t, doc.Author, saved.Author)
		assert.True(t, saved.Created.After(doc.Created), "caller Created must be discarded")

		_, ok := s.Store.FindByID(ctx, doc.ID)
		assert.False(t, ok)
	})

	t.Run("SaveExistingID", func(t *testing.T) {
		s := Seed(t, newStore())
		doc := BuildDocument()
		doc.ID = s.Docs[0].ID

		saved := s.Store.Save(ctx, doc)

		assert.Equal(t, doc, saved)
		got, ok := s.Store.FindByID(ctx, doc.ID)
		require.True(t, ok)
		assert.Equal(t, doc.Title, got.Title)
		assert.Equal(t, doc.Content, got.Content)
		assert.Equal(t, doc.Author, got.Author)
		assert.Len(t, s.Store.Search(ctx, core.SearchRequest{}), 3)
	})

	t.Run("SaveExistingIDOverwritesCreated", func(t *testing.T) {
		s := Seed(t, newStore())
		update := s.Docs[1]
		update.Title = "renamed"
		update.Created = time.Time{}

		s.Store.Save(ctx, update)

		got, ok := s.Store.FindByID(ctx, update.ID)
		require.True(t, ok)
		assert.True(t, got.Created.IsZero())
	})

	t.Run("SaveExistingIDPreserveCreated", func(t *testing.T) {
		s := Seed(t, newStore(core.WithPreserveCreated()))
		update := s.Docs[1]
		update.Title = "renamed"
		update.Created = time.Time{}

		saved := s.Store.Save(ctx, update)

		assert.Equal(t, "renamed", saved.Title)
		assert.True(t, s.Docs[1].Created.Equal(saved.Created))
		got, _ := s.Store.FindByID(ctx, update.ID)
		assert.True(t, s.Docs[1].Created.Equal(got.Created))
	})

	t.Run("SaveUsesInjectedClockAndIDs", func(t *testing.T) {
		at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		n := 0
		store := newStore(
			core.WithClock(func() time.Time { return at }),
			core.WithIDGenerator(func() string { n++; return fmt.Sprintf("doc-%d", n) }),
		)

		saved := store.Save(ctx, BuildDocument())

		assert.Equal(t, "doc-1", saved.ID)
		assert.Equal(t, at, saved.Created)
	})

	t.Run("SearchNoFilters", func(t *testing.T) {
		s := Seed(t, newStore())
		assert.Len(t, s.Store.Search(ctx, core.SearchRequest{}), 3)
	})

	t.Run("SearchByTitlePrefix", func(t *testing.T) {
		s := Seed(t, newStore())
		found := s.Store.Search(ctx, core.SearchRequest{TitlePrefixes: []string{"1T", "2T"}})

		require.Len(t, found, 2)
		assert.ElementsMatch(t, []string{"1Title", "2Title"}, titles(found))
	})

	t.Run("SearchByContent", func(t *testing.T) {
		s := Seed(t, newStore())
		found := s.Store.Search(ctx, core.SearchRequest{ContainsContents: []string{"1C", "bug"}})

		require.Len(t, found, 2)
		assert.ElementsMatch(t, []string{"1Title", "3Title"}, titles(found))
	})

	t.Run("SearchByAuthorID", func(t *testing.T) {
		s := Seed(t, newStore())
		found := s.Store.Search(ctx, core.SearchRequest{AuthorIDs: []string{"2"}})

		require.Len(t, found, 1)
		assert.Equal(t, "Vladyslav", found[0].Author.Name)
	})

	t.Run("SearchByDateRange", func(t *testing.T) {
		s := Seed(t, newStore())
		now := time.Now()
		found := s.Store.Search(ctx, core.SearchRequest{}.Between(now.Add(-50*time.Second), now.Add(50*time.Second)))

		assert.Len(t, found, 3)
	})

	t.Run("SearchAllFilters", func(t *testing.T) {
		s := Seed(t, newStore())
		now := time.Now()
		request := core.SearchRequest{
			TitlePrefixes:    []string{"1T"},
			ContainsContents: []string{"1C"},
			AuthorIDs:        []string{"1"},
		}.Between(now.Add(-50*time.Second), now.Add(50*time.Second))

		found := s.Store.Search(ctx, request)

		require.Len(t, found, 1)
		assert.Equal(t, s.Docs[0], found[0])
	})

	t.Run("SearchRandomFiltersMatchNothing", func(t *testing.T) {
		s := Seed(t, newStore())
		assert.Empty(t, s.Store.Search(ctx, BuildSearchRequest()))
	})

	t.Run("SearchEmptySetMatchesNothing", func(t *testing.T) {
		s := Seed(t, newStore())
		found := s.Store.Search(ctx, core.SearchRequest{AuthorIDs: []string{}})

		require.NotNil(t, found)
		assert.Empty(t, found)
	})

	t.Run("SearchBoundsAreInclusive", func(t *testing.T) {
		at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		store := newStore(core.WithClock(func() time.Time { return at }))
		store.Save(ctx, BuildDocument())

		assert.Len(t, store.Search(ctx, core.SearchRequest{}.Between(at, at)), 1)
		assert.Empty(t, store.Search(ctx, core.SearchRequest{CreatedFrom: core.From(at.Add(time.Nanosecond))}))
		assert.Empty(t, store.Search(ctx, core.SearchRequest{CreatedTo: core.To(at.Add(-time.Nanosecond))}))
	})

	t.Run("FindByID", func(t *testing.T) {
		s := Seed(t, newStore())

		got, ok := s.Store.FindByID(ctx, s.Docs[2].ID)
		require.True(t, ok)
		assert.Equal(t, s.Docs[2], got)

		_, ok = s.Store.FindByID(ctx, "missing")
		assert.False(t, ok)
	})

	t.Run("ReturnedDocumentsAreCopies", func(t *testing.T) {
		s := Seed(t, newStore())
		found := s.Store.Search(ctx, core.SearchRequest{AuthorIDs: []string{"1"}})
		require.Len(t, found, 1)
		found[0].Title = "mutated"

		got, _ := s.Store.FindByID(ctx, s.Docs[0].ID)
		assert.Equal(t, "1Title", got.Title)
	})

	t.Run("ConcurrentAccess", func(t *testing.T) {
		store := newStore()
		const workers, perWorker = 8, 50

		var wg sync.WaitGroup
		ids := make(chan string, workers*perWorker)
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < perWorker; i++ {
					saved := store.Save(ctx, BuildDocument())
					ids <- saved.ID
					store.Search(ctx, core.SearchRequest{TitlePrefixes: []string{saved.Title}})
					_, ok := store.FindByID(ctx, saved.ID)
					assert.True(t, ok)
					saved.Content = "updated"
					store.Save(ctx, saved)
				}
			}()
		}
		wg.Wait()
		close(ids)

		seen := make(map[string]struct{})
		for id := range ids {
			seen[id] = struct{}{}
		}
		assert.Len(t, seen, workers*perWorker)
		all := store.Search(ctx, core.SearchRequest{})
		assert.Len(t, all, workers*perWorker)
		for _, doc := range all {
			assert.Equal(t, "updated", doc.Content)
		}
	})
}

func titles(docs []core.Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Title)
	}
	return out
}
