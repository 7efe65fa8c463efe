package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/99designs/keyring"

	"github.com/MKhiriev/go-mail-notes/internal/config"
	"github.com/MKhiriev/go-mail-notes/internal/logger"
	"github.com/MKhiriev/go-mail-notes/models"
)

const (
	credentialsItemKey    = "credentials"
	vaultIdentifierKey    = "vault_identifier"
	defaultFilePassphrase = "go-mail-notes-file-key"
)

// credentialItem is the JSON document stored in the keyring. Identity,
// secret and alias live in a single item so a rotation replaces all three in
// one write.
type credentialItem struct {
	Identity     string    `json:"identity"`
	Secret       string    `json:"secret"`
	Alias        string    `json:"alias"`
	RegisteredAt time.Time `json:"registered_at"`
}

type keyringCredentialStore struct {
	ring     keyring.Keyring
	settings SettingsRepository
	logger   *logger.Logger
}

// OpenKeyring returns a keyring using the first available OS backend, falling
// back to an encrypted file under cfg.FileDir.
func OpenKeyring(cfg config.ClientKeyring) (keyring.Keyring, error) {
	password := cfg.FilePassword
	if password == "" {
		password = defaultFilePassphrase
	}

	ring, err := keyring.Open(keyring.Config{
		ServiceName: cfg.ServiceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  cfg.FileDir,
		FilePasswordFunc:         keyring.FixedStringPrompt(password),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return ring, nil
}

// NewKeyringCredentialStore returns a [CredentialStore] that keeps the
// credentials in ring and the vault identifier in settings.
func NewKeyringCredentialStore(ring keyring.Keyring, settings SettingsRepository, logger *logger.Logger) CredentialStore {
	return &keyringCredentialStore{ring: ring, settings: settings, logger: logger}
}

func (s *keyringCredentialStore) Load(ctx context.Context) (models.Credentials, error) {
	vaultID, err := s.VaultIdentifier(ctx)
	if err != nil && !errors.Is(err, ErrSettingNotFound) {
		return models.Credentials{}, err
	}

	item, err := s.ring.Get(credentialsItemKey)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return models.Credentials{VaultIdentifier: vaultID}, ErrCredentialsNotFound
	}
	if err != nil {
		return models.Credentials{}, fmt.Errorf("getting credentials: %w", err)
	}

	var stored credentialItem
	if err = json.Unmarshal(item.Data, &stored); err != nil {
		s.logger.Err(err).
			Str("func", "keyringCredentialStore.Load").
			Msg("stored credentials cannot be decoded")
		return models.Credentials{VaultIdentifier: vaultID}, fmt.Errorf("%w: %w", ErrCorruptCredentials, err)
	}

	return models.Credentials{
		Identity:        stored.Identity,
		Secret:          stored.Secret,
		Alias:           stored.Alias,
		VaultIdentifier: vaultID,
		RegisteredAt:    stored.RegisteredAt,
	}, nil
}

func (s *keyringCredentialStore) Save(_ context.Context, creds models.Credentials) error {
	data, err := json.Marshal(credentialItem{
		Identity:     creds.Identity,
		Secret:       creds.Secret,
		Alias:        creds.Alias,
		RegisteredAt: creds.RegisteredAt,
	})
	if err != nil {
		return fmt.Errorf("encoding credentials: %w", err)
	}

	err = s.ring.Set(keyring.Item{
		Key:         credentialsItemKey,
		Data:        data,
		Label:       "go-mail-notes credentials",
		Description: "Alias and passkey for the mail notes service",
	})
	if err != nil {
		return fmt.Errorf("setting credentials: %w", err)
	}

	return nil
}

func (s *keyringCredentialStore) VaultIdentifier(ctx context.Context) (string, error) {
	return s.settings.Get(ctx, vaultIdentifierKey)
}

func (s *keyringCredentialStore) SaveVaultIdentifier(ctx context.Context, id string) error {
	return s.settings.Set(ctx, vaultIdentifierKey, id)
}
