// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	settingsTable      = "settings"
	syncStateTable     = "sync_state"
	importedNotesTable = "imported_notes"

	// syncStateRowID is the id of the only row in sync_state.
	syncStateRowID = 1
)

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var syncStateColumns = []string{
	"cursor",
	"quota_used",
	"quota_limit",
	"imports_this_period",
	"auto_open",
	"over_quota",
	"last_attempt_at",
	"last_success_at",
	"last_error",
}

func buildSelectSettingQuery(key string) (string, []any, error) {
	return sqlite.
		Select("value").
		From(settingsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildUpsertSettingQuery(key, value string) (string, []any, error) {
	return sqlite.
		Insert(settingsTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
}

func buildSelectSyncStateQuery() (string, []any, error) {
	return sqlite.
		Select(syncStateColumns...).
		From(syncStateTable).
		Where(sq.Eq{"id": syncStateRowID}).
		ToSql()
}

func buildUpsertSyncStateQuery(row syncStateRow) (string, []any, error) {
	return sqlite.
		Insert(syncStateTable).
		Columns(append([]string{"id"}, syncStateColumns...)...).
		Values(
			syncStateRowID,
			row.Cursor,
			row.QuotaUsed,
			row.QuotaLimit,
			row.ImportsThisPeriod,
			row.AutoOpen,
			row.OverQuota,
			row.LastAttemptAt,
			row.LastSuccessAt,
			row.LastError,
		).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			cursor = excluded.cursor,
			quota_used = excluded.quota_used,
			quota_limit = excluded.quota_limit,
			imports_this_period = excluded.imports_this_period,
			auto_open = excluded.auto_open,
			over_quota = excluded.over_quota,
			last_attempt_at = excluded.last_attempt_at,
			last_success_at = excluded.last_success_at,
			last_error = excluded.last_error`).
		ToSql()
}

func buildSelectImportedNoteQuery(noteID string) (string, []any, error) {
	return sqlite.
		Select("note_id", "path", "created_at", "imported_at").
		From(importedNotesTable).
		Where(sq.Eq{"note_id": noteID}).
		ToSql()
}

func buildUpsertImportedNoteQuery(noteID, path, createdAt, importedAt string) (string, []any, error) {
	return sqlite.
		Insert(importedNotesTable).
		Columns("note_id", "path", "created_at", "imported_at").
		Values(noteID, path, createdAt, importedAt).
		Suffix("ON CONFLICT(note_id) DO UPDATE SET path = excluded.path, created_at = excluded.created_at, imported_at = excluded.imported_at").
		ToSql()
}
