package stores

import (
	"context"
	"document-manager/config"
	"document-manager/core"
	"document-manager/stores/memory"
	"document-manager/stores/syncmap"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStoreSelectsBackend(t *testing.T) {
	tests := []struct {
		storeType string
		want      core.DocumentStore
	}{
		{"", memory.NewDocumentStore()},
		{"memory", memory.NewDocumentStore()},
		{"unknown", memory.NewDocumentStore()},
		{"syncmap", syncmap.NewDocumentStore()},
	}
	for _, tt := range tests {
		t.Run(tt.storeType, func(t *testing.T) {
			store := GetStore(config.Config{StoreType: tt.storeType, LogLevel: logrus.InfoLevel})
			assert.IsType(t, tt.want, store)
		})
	}
}

func TestGetStoreAppliesLogLevel(t *testing.T) {
	orig := logrus.GetLevel()
	defer logrus.SetLevel(orig)

	GetStore(config.Config{LogLevel: logrus.WarnLevel})
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
}

func TestGetStorePreserveCreated(t *testing.T) {
	ctx := context.Background()
	for _, storeType := range []string{"memory", "syncmap"} {
		t.Run(storeType, func(t *testing.T) {
			store := GetStore(config.Config{StoreType: storeType, PreserveCreated: true, LogLevel: logrus.InfoLevel})
			saved := store.Save(ctx, core.Document{Title: "t"})

			update := saved
			update.Created = time.Time{}
			store.Save(ctx, update)

			got, ok := store.FindByID(ctx, saved.ID)
			require.True(t, ok)
			assert.Equal(t, saved.Created, got.Created)
		})
	}
}

func TestNewFromEnv(t *testing.T) {
	orig := logrus.GetLevel()
	defer logrus.SetLevel(orig)

	t.Setenv("DOCSTORE_STORE_TYPE", "syncmap")
	t.Setenv("DOCSTORE_LOG_LEVEL", "error")

	store, err := NewFromEnv()
	require.NoError(t, err)
	assert.IsType(t, syncmap.NewDocumentStore(), store)

	t.Setenv("DOCSTORE_LOG_LEVEL", "loud")
	_, err = NewFromEnv()
	assert.Error(t, err)
}
