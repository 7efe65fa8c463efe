package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-mail-notes/internal/logger"
	"github.com/MKhiriev/go-mail-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return &DB{DB: conn, logger: logger.Nop()}, mock
}

func TestStateRepository_Load_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStateRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT cursor, quota_used").
		WithArgs(syncStateRowID).
		WillReturnError(sql.ErrNoRows)

	state, found, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, models.SyncState{}, state)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepository_Load_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStateRepository(db, logger.Nop())

	cursor := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(syncStateColumns).
		AddRow(cursor.Format(time.RFC3339Nano), 7, 100, 3, true, false, "", "", "last error")

	mock.ExpectQuery("SELECT cursor, quota_used").
		WithArgs(syncStateRowID).
		WillReturnRows(rows)

	state, found, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, cursor.Equal(state.Cursor.LastSyncTimestamp))
	assert.Equal(t, models.QuotaState{Used: 7, Limit: 100, ImportsThisPeriod: 3}, state.Quota)
	assert.True(t, state.AutoOpenImported)
	assert.False(t, state.OverQuota)
	assert.True(t, state.LastAttemptAt.IsZero())
	assert.Equal(t, "last error", state.LastError)
}

func TestStateRepository_Load_CorruptTimestamp(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStateRepository(db, logger.Nop())

	rows := sqlmock.NewRows(syncStateColumns).
		AddRow("not-a-time", 0, 0, 0, false, false, "", "", "")
	mock.ExpectQuery("SELECT cursor").WillReturnRows(rows)

	_, _, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestStateRepository_Load_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStateRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT cursor").WillReturnError(errors.New("disk I/O error"))

	_, _, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestStateRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStateRepository(db, logger.Nop())

	cursor := time.Date(2026, 4, 1, 10, 0, 0, 0, time.FixedZone("X", 3600))
	state := models.SyncState{
		Cursor: models.SyncCursor{LastSyncTimestamp: cursor},
		Quota:  models.QuotaState{Used: 1, Limit: 2, ImportsThisPeriod: 3},
	}

	mock.ExpectExec("INSERT INTO sync_state").
		WithArgs(syncStateRowID, cursor.UTC().Format(time.RFC3339Nano), int64(1), int64(2), int64(3), false, false, "", "", "").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Save(context.Background(), state))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepository_Save_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStateRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO sync_state").WillReturnError(errors.New("readonly database"))

	err := repo.Save(context.Background(), models.SyncState{})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSettingsRepository_GetSet(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSettingsRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO settings").
		WithArgs("vault_identifier", "abc").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT value FROM settings").
		WithArgs("vault_identifier").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("abc"))
	mock.ExpectQuery("SELECT value FROM settings").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	require.NoError(t, repo.Set(context.Background(), "vault_identifier", "abc"))

	got, err := repo.Get(context.Background(), "vault_identifier")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	_, err = repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSettingNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestImportedNoteRepository_FindNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewImportedNoteRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT note_id, path").
		WithArgs("n1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Find(context.Background(), "n1")
	assert.ErrorIs(t, err, ErrImportedNoteNotFound)
}
