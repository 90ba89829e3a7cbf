package datastore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linksift/linksift/internal/config"
	"github.com/linksift/linksift/internal/models"
)

func newTestStore(t *testing.T) *ParquetStore {
	cfg := config.NewDefaultStorageConfig()
	cfg.ParquetBasePath = t.TempDir()
	store, err := NewParquetStore(&cfg, zerolog.Nop())
	require.NoError(t, err)
	return store
}

func TestNewParquetStoreValidation(t *testing.T) {
	_, err := NewParquetStore(nil, zerolog.Nop())
	assert.Error(t, err)

	_, err = NewParquetStore(&config.StorageConfig{}, zerolog.Nop())
	assert.Error(t, err)
}

func TestWriteAndReadSession(t *testing.T) {
	store := newTestStore(t)
	urls := []models.Url{
		{
			Value:   "https://example.com/a",
			Scheme:  models.SchemeHTTPS,
			Host:    "example.com",
			Path:    "/a",
			Line:    3,
			Column:  12,
			Context: `href="https://example.com/a"`,
		},
		{
			Value:   "mailto:ops@example.com",
			Scheme:  models.SchemeMailto,
			Context: "root.contact.email",
		},
	}

	path, err := store.WriteSession("01TESTSESSION", "docs/readme.md", urls)
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Equal(t, "01TESTSESSION.parquet", filepath.Base(path))

	records, err := store.ReadSession("01TESTSESSION")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "01TESTSESSION", records[0].SessionID)
	assert.Equal(t, "docs/readme.md", records[0].SourcePath)
	assert.Equal(t, "https://example.com/a", records[0].Value)
	assert.Equal(t, int32(3), records[0].Line)
	assert.False(t, records[0].DiscoveryTimestamp.IsZero())
	assert.Equal(t, "mailto:ops@example.com", records[1].Value)
}

func TestWriteSessionEmptyID(t *testing.T) {
	store := newTestStore(t)
	_, err := store.WriteSession("", "x", nil)
	assert.Error(t, err)
}

func TestWriteSessionEmptyURLList(t *testing.T) {
	store := newTestStore(t)
	path, err := store.WriteSession("01EMPTY", "x", nil)
	require.NoError(t, err)

	records, err := store.ReadSession("01EMPTY")
	require.NoError(t, err)
	assert.Empty(t, records)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestReadSessionMissing(t *testing.T) {
	store := newTestStore(t)
	_, err := store.ReadSession("01NOPE")
	assert.Error(t, err)
}

func TestUrlsRoundTrip(t *testing.T) {
	records := []models.UrlRecord{
		{Value: "https://example.com", Scheme: "https", Host: "example.com", Line: 2, Column: 5},
	}
	urls := Urls(records)
	require.Len(t, urls, 1)
	assert.Equal(t, models.SchemeHTTPS, urls[0].Scheme)
	assert.Equal(t, 2, urls[0].Line)
	assert.Equal(t, 5, urls[0].Column)
}
