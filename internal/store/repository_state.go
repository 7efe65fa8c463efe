package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-mail-notes/internal/logger"
	"github.com/MKhiriev/go-mail-notes/models"
)

// syncStateRow is the column-level representation of [models.SyncState].
// Timestamps are stored as RFC 3339 text; an empty string means unset.
type syncStateRow struct {
	Cursor            string
	QuotaUsed         int64
	QuotaLimit        int64
	ImportsThisPeriod int64
	AutoOpen          bool
	OverQuota         bool
	LastAttemptAt     string
	LastSuccessAt     string
	LastError         string
}

type stateRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewStateRepository returns a SQLite-backed [StateRepository].
func NewStateRepository(db *DB, logger *logger.Logger) StateRepository {
	return &stateRepository{db: db, logger: logger}
}

func (r *stateRepository) Load(ctx context.Context) (models.SyncState, bool, error) {
	query, args, err := buildSelectSyncStateQuery()
	if err != nil {
		return models.SyncState{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row syncStateRow
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&row.Cursor,
		&row.QuotaUsed,
		&row.QuotaLimit,
		&row.ImportsThisPeriod,
		&row.AutoOpen,
		&row.OverQuota,
		&row.LastAttemptAt,
		&row.LastSuccessAt,
		&row.LastError,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncState{}, false, nil
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "stateRepository.Load").
			Msg("failed to load sync state")
		return models.SyncState{}, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	state, err := row.toModel()
	if err != nil {
		return models.SyncState{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return state, true, nil
}

func (r *stateRepository) Save(ctx context.Context, state models.SyncState) error {
	query, args, err := buildUpsertSyncStateQuery(newSyncStateRow(state))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "stateRepository.Save").
			Time("cursor", state.Cursor.LastSyncTimestamp).
			Msg("failed to save sync state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func newSyncStateRow(s models.SyncState) syncStateRow {
	return syncStateRow{
		Cursor:            formatTime(s.Cursor.LastSyncTimestamp),
		QuotaUsed:         s.Quota.Used,
		QuotaLimit:        s.Quota.Limit,
		ImportsThisPeriod: s.Quota.ImportsThisPeriod,
		AutoOpen:          s.AutoOpenImported,
		OverQuota:         s.OverQuota,
		LastAttemptAt:     formatTime(s.LastAttemptAt),
		LastSuccessAt:     formatTime(s.LastSuccessAt),
		LastError:         s.LastError,
	}
}

func (row syncStateRow) toModel() (models.SyncState, error) {
	cursor, err := parseTime(row.Cursor)
	if err != nil {
		return models.SyncState{}, fmt.Errorf("cursor: %w", err)
	}
	lastAttempt, err := parseTime(row.LastAttemptAt)
	if err != nil {
		return models.SyncState{}, fmt.Errorf("last_attempt_at: %w", err)
	}
	lastSuccess, err := parseTime(row.LastSuccessAt)
	if err != nil {
		return models.SyncState{}, fmt.Errorf("last_success_at: %w", err)
	}

	return models.SyncState{
		Cursor: models.SyncCursor{LastSyncTimestamp: cursor},
		Quota: models.QuotaState{
			Used:              row.QuotaUsed,
			Limit:             row.QuotaLimit,
			ImportsThisPeriod: row.ImportsThisPeriod,
		},
		AutoOpenImported: row.AutoOpen,
		OverQuota:        row.OverQuota,
		LastAttemptAt:    lastAttempt,
		LastSuccessAt:    lastSuccess,
		LastError:        row.LastError,
	}, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}
