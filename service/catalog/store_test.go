package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elC0mpa/aws-costpilot/model"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cache.json")
	store := NewFileStore(path)

	saved := &model.CatalogRecord{
		CachedAt: time.Now().Truncate(time.Second),
		Services: []string{"AWS Lambda"},
	}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, saved.Services, loaded.Services)
	assert.True(t, saved.CachedAt.Equal(loaded.CachedAt))
}

func TestFileStoreMissingFileReadsAsEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))

	record, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestFileStoreCorruptContentReadsAsEmpty(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "{{{"},
		{name: "missing timestamp", content: `{"services":["a"]}`},
		{name: "missing services", content: `{"cached_at":"2025-08-01T00:00:00Z"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cache.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			record, err := NewFileStore(path).Load()
			require.NoError(t, err)
			assert.Nil(t, record)
		})
	}
}

func TestFileStoreDeleteTolerated(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "cache.json"))

	assert.NoError(t, store.Delete())

	require.NoError(t, store.Save(&model.CatalogRecord{CachedAt: time.Now(), Services: []string{"a"}}))
	assert.NoError(t, store.Delete())

	record, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, record)
}
