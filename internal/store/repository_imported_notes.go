package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-mail-notes/internal/logger"
	"github.com/MKhiriev/go-mail-notes/models"
)

type importedNoteRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewImportedNoteRepository returns a SQLite-backed [ImportedNoteRepository].
func NewImportedNoteRepository(db *DB, logger *logger.Logger) ImportedNoteRepository {
	return &importedNoteRepository{db: db, logger: logger}
}

func (r *importedNoteRepository) Find(ctx context.Context, noteID string) (models.ImportedNote, error) {
	query, args, err := buildSelectImportedNoteQuery(noteID)
	if err != nil {
		return models.ImportedNote{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		note                  models.ImportedNote
		createdAt, importedAt string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&note.NoteID, &note.Path, &createdAt, &importedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ImportedNote{}, fmt.Errorf("%w: %s", ErrImportedNoteNotFound, noteID)
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "importedNoteRepository.Find").
			Str("note_id", noteID).
			Msg("failed to query imported note")
		return models.ImportedNote{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if note.Created, err = parseTime(createdAt); err != nil {
		return models.ImportedNote{}, fmt.Errorf("%w: created_at: %w", ErrScanningRow, err)
	}
	if note.ImportedAt, err = parseTime(importedAt); err != nil {
		return models.ImportedNote{}, fmt.Errorf("%w: imported_at: %w", ErrScanningRow, err)
	}

	return note, nil
}

func (r *importedNoteRepository) Save(ctx context.Context, note models.ImportedNote) error {
	query, args, err := buildUpsertImportedNoteQuery(note.NoteID, note.Path, formatTime(note.Created), formatTime(note.ImportedAt))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "importedNoteRepository.Save").
			Str("note_id", note.NoteID).
			Str("path", note.Path).
			Msg("failed to save imported note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
