package store

import (
	"context"

	"github.com/MKhiriev/go-mail-notes/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// StateRepository persists the single [models.SyncState] row owned by the
// sync engine.
type StateRepository interface {
	// Load returns the stored state. found is false when nothing has been
	// saved yet; the returned state is then the zero value.
	Load(ctx context.Context) (state models.SyncState, found bool, err error)
	// Save replaces the stored state.
	Save(ctx context.Context, state models.SyncState) error
}

// SettingsRepository is a small key-value table for installation settings
// such as the vault identifier.
type SettingsRepository interface {
	// Get returns the value for key or [ErrSettingNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set inserts or replaces the value for key.
	Set(ctx context.Context, key, value string) error
}

// ImportedNoteRepository is the note id to local path index.
type ImportedNoteRepository interface {
	// Find returns the index entry for noteID or [ErrImportedNoteNotFound].
	Find(ctx context.Context, noteID string) (models.ImportedNote, error)
	// Save inserts or replaces the index entry for note.NoteID.
	Save(ctx context.Context, note models.ImportedNote) error
}

// CredentialStore holds the credentials issued at registration and the
// locally generated vault identifier.
type CredentialStore interface {
	// Load returns the stored credentials or [ErrCredentialsNotFound].
	// The vault identifier is always filled in when one exists.
	Load(ctx context.Context) (models.Credentials, error)
	// Save stores identity, secret and alias in one write.
	Save(ctx context.Context, creds models.Credentials) error
	// VaultIdentifier returns the stored installation id or
	// [ErrSettingNotFound].
	VaultIdentifier(ctx context.Context) (string, error)
	// SaveVaultIdentifier stores the installation id.
	SaveVaultIdentifier(ctx context.Context, id string) error
}
