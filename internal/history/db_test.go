package history

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	db, err := NewDB(filepath.Join(t.TempDir(), "history.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestNewSessionID(t *testing.T) {
	a := NewSessionID()
	b := NewSessionID()
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
	// ULIDs from the same generator order by creation time.
	assert.True(t, a < b)
}

func TestRecordAndListSessions(t *testing.T) {
	db := newTestDB(t)

	first := NewSessionID()
	second := NewSessionID()
	start := time.Now()

	require.NoError(t, db.RecordStart(first, "markdown", "docs/a.md", start))
	require.NoError(t, db.RecordStart(second, "html", "site/index.html", start))
	require.NoError(t, db.RecordCompletion(first, start.Add(time.Second), 12, 0, true))
	require.NoError(t, db.RecordCompletion(second, start.Add(2*time.Second), 3, 1, false))

	entries, err := db.ListSessions(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, second, entries[0].SessionID)
	assert.Equal(t, "html", entries[0].Format)
	assert.Equal(t, 3, entries[0].UrlCount)
	assert.Equal(t, 1, entries[0].ErrorCount)
	assert.False(t, entries[0].Success)

	assert.Equal(t, first, entries[1].SessionID)
	assert.True(t, entries[1].Success)
	assert.True(t, entries[1].EndTime.Valid)
}

func TestLatestSession(t *testing.T) {
	db := newTestDB(t)

	older := NewSessionID()
	newer := NewSessionID()
	pending := NewSessionID()
	now := time.Now()

	require.NoError(t, db.RecordStart(older, "json", "api/spec.json", now))
	require.NoError(t, db.RecordCompletion(older, now, 5, 0, true))
	require.NoError(t, db.RecordStart(newer, "json", "api/spec.json", now))
	require.NoError(t, db.RecordCompletion(newer, now, 7, 0, true))
	// A started but unfinished session must not be returned.
	require.NoError(t, db.RecordStart(pending, "json", "api/spec.json", now))

	entry, err := db.LatestSession("api/spec.json")
	require.NoError(t, err)
	assert.Equal(t, newer, entry.SessionID)
	assert.Equal(t, 7, entry.UrlCount)
}

func TestLatestSessionNoRows(t *testing.T) {
	db := newTestDB(t)
	_, err := db.LatestSession("never/scanned.md")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDuplicateSessionIDRejected(t *testing.T) {
	db := newTestDB(t)
	id := NewSessionID()
	now := time.Now()
	require.NoError(t, db.RecordStart(id, "html", "a.html", now))
	assert.Error(t, db.RecordStart(id, "html", "b.html", now))
}
