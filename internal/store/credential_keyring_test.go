package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/99designs/keyring"
	"github.com/MKhiriev/go-mail-notes/internal/logger"
	"github.com/MKhiriev/go-mail-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySettings struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemorySettings() *memorySettings {
	return &memorySettings{values: map[string]string{}}
}

func (m *memorySettings) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrSettingNotFound, key)
	}
	return v, nil
}

func (m *memorySettings) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func TestKeyringCredentialStore_LoadEmpty(t *testing.T) {
	store := NewKeyringCredentialStore(keyring.NewArrayKeyring(nil), newMemorySettings(), logger.Nop())

	creds, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrCredentialsNotFound)
	assert.Empty(t, creds.VaultIdentifier)
	assert.False(t, creds.IsComplete())
}

func TestKeyringCredentialStore_VaultIdentifierSurvivesMissingCredentials(t *testing.T) {
	settings := newMemorySettings()
	store := NewKeyringCredentialStore(keyring.NewArrayKeyring(nil), settings, logger.Nop())

	require.NoError(t, store.SaveVaultIdentifier(context.Background(), "vault-1"))

	creds, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrCredentialsNotFound)
	assert.Equal(t, "vault-1", creds.VaultIdentifier)
}

func TestKeyringCredentialStore_SaveLoadRoundTrip(t *testing.T) {
	store := NewKeyringCredentialStore(keyring.NewArrayKeyring(nil), newMemorySettings(), logger.Nop())
	ctx := context.Background()
	registered := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, store.SaveVaultIdentifier(ctx, "vault-1"))
	require.NoError(t, store.Save(ctx, models.Credentials{
		Identity:     "id-1",
		Secret:       "pk-1",
		Alias:        "a@notes.example",
		RegisteredAt: registered,
	}))

	creds, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "id-1", creds.Identity)
	assert.Equal(t, "pk-1", creds.Secret)
	assert.Equal(t, "a@notes.example", creds.Alias)
	assert.Equal(t, "vault-1", creds.VaultIdentifier)
	assert.True(t, registered.Equal(creds.RegisteredAt))
}

func TestKeyringCredentialStore_RotationReplacesAllFields(t *testing.T) {
	store := NewKeyringCredentialStore(keyring.NewArrayKeyring(nil), newMemorySettings(), logger.Nop())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, models.Credentials{Identity: "id-1", Secret: "pk-1", Alias: "old@x"}))
	require.NoError(t, store.Save(ctx, models.Credentials{Identity: "id-2", Secret: "pk-2", Alias: "new@x"}))

	creds, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "id-2", creds.Identity)
	assert.Equal(t, "pk-2", creds.Secret)
	assert.Equal(t, "new@x", creds.Alias)
}

func TestKeyringCredentialStore_CorruptItem(t *testing.T) {
	ring := keyring.NewArrayKeyring([]keyring.Item{{Key: credentialsItemKey, Data: []byte("{not json")}})
	store := NewKeyringCredentialStore(ring, newMemorySettings(), logger.Nop())

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrCorruptCredentials)
}
