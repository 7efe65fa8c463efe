package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mail-notes/internal/config"
	"github.com/MKhiriev/go-mail-notes/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// State persists the sync engine's cursor, quota and flags.
	State StateRepository
	// Settings is the installation key-value table.
	Settings SettingsRepository
	// ImportedNotes indexes remote note ids to local file paths.
	ImportedNotes ImportedNoteRepository
	// Credentials holds the registration result and vault identifier.
	Credentials CredentialStore

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Opens the OS keyring for the credential store.
//
// Returns an error if the database connection cannot be established, if
// migration fails or no keyring backend is usable.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	ring, err := OpenKeyring(cfg.Keyring)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	settings := NewSettingsRepository(db, logger)

	return &ClientStorages{
		State:         NewStateRepository(db, logger),
		Settings:      settings,
		ImportedNotes: NewImportedNoteRepository(db, logger),
		Credentials:   NewKeyringCredentialStore(ring, settings, logger),
		db:            db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
