package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-mail-notes/internal/config"
	"github.com/MKhiriev/go-mail-notes/internal/logger"
	"github.com/MKhiriev/go-mail-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewConnectSQLite(context.Background(), config.ClientDB{
		DSN: filepath.Join(t.TempDir(), "state.db"),
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())
	return db
}

func TestSQLite_StateRoundTrip(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewStateRepository(db, logger.Nop())
	ctx := context.Background()

	_, found, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	cursor := time.Date(2026, 6, 1, 12, 30, 0, 123, time.UTC)
	want := models.SyncState{
		Cursor:           models.SyncCursor{LastSyncTimestamp: cursor},
		Quota:            models.QuotaState{Used: 4, Limit: 10, ImportsThisPeriod: 4},
		AutoOpenImported: true,
		OverQuota:        true,
		LastAttemptAt:    cursor,
		LastError:        "network unavailable",
	}
	require.NoError(t, repo.Save(ctx, want))

	want.Quota.Used = 5
	require.NoError(t, repo.Save(ctx, want))

	got, found, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, cursor.Equal(got.Cursor.LastSyncTimestamp))
	assert.Equal(t, want.Quota, got.Quota)
	assert.True(t, got.AutoOpenImported)
	assert.True(t, got.OverQuota)
	assert.True(t, got.LastSuccessAt.IsZero())
	assert.Equal(t, want.LastError, got.LastError)
}

func TestSQLite_ImportedNotesUpsert(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewImportedNoteRepository(db, logger.Nop())
	ctx := context.Background()

	created := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, models.ImportedNote{NoteID: "n1", Path: "Mail Notes/a.md", Created: created, ImportedAt: created}))
	require.NoError(t, repo.Save(ctx, models.ImportedNote{NoteID: "n1", Path: "Mail Notes/b.md", Created: created, ImportedAt: created.Add(time.Hour)}))

	got, err := repo.Find(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, "Mail Notes/b.md", got.Path)
	assert.True(t, created.Add(time.Hour).Equal(got.ImportedAt))

	_, err = repo.Find(ctx, "n2")
	assert.ErrorIs(t, err, ErrImportedNoteNotFound)
}

func TestSQLite_SettingsOverwrite(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewSettingsRepository(db, logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", "v1"))
	require.NoError(t, repo.Set(ctx, "k", "v2"))

	got, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", got)
}
