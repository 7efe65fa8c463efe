package devserver

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-mail-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestMailbox returns a mailbox whose clock advances one second per call.
func newTestMailbox(limit int64) *Mailbox {
	m := NewMailbox("Notes.Test", limit)
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time {
		now = now.Add(time.Second)
		return now
	}
	return m
}

func TestMailbox_RegisterIsIdempotent(t *testing.T) {
	m := newTestMailbox(0)

	first, err := m.Register(models.RegisterRequest{VaultIdentifier: "v1"}, false)
	require.NoError(t, err)
	assert.Contains(t, first.EmailAddress, "@notes.test")
	assert.NotEmpty(t, first.Passkey)
	assert.NotEmpty(t, first.VaultID)

	again, err := m.Register(models.RegisterRequest{VaultIdentifier: "v1"}, false)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestMailbox_RegisterRequiresVaultIdentifier(t *testing.T) {
	m := newTestMailbox(0)

	_, err := m.Register(models.RegisterRequest{VaultIdentifier: "  "}, false)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestMailbox_RotateReplacesAliasAndPasskey(t *testing.T) {
	m := newTestMailbox(0)

	first, err := m.Register(models.RegisterRequest{VaultIdentifier: "v1"}, false)
	require.NoError(t, err)
	rotated, err := m.Register(models.RegisterRequest{VaultIdentifier: "v1"}, true)
	require.NoError(t, err)

	assert.NotEqual(t, first.EmailAddress, rotated.EmailAddress)
	assert.NotEqual(t, first.Passkey, rotated.Passkey)
	assert.Equal(t, first.VaultID, rotated.VaultID)

	_, err = m.Deliver(first.EmailAddress, "t", "b")
	assert.ErrorIs(t, err, ErrUnknownAlias)

	_, err = m.Download(models.DownloadRequest{VaultIdentifier: "v1", Passkey: first.Passkey})
	assert.ErrorIs(t, err, ErrWrongPasskey)
}

func TestMailbox_DownloadSince(t *testing.T) {
	m := newTestMailbox(0)
	reg, err := m.Register(models.RegisterRequest{VaultIdentifier: "v1"}, false)
	require.NoError(t, err)

	first, err := m.Deliver(reg.EmailAddress, "one", "# one")
	require.NoError(t, err)
	_, err = m.Deliver(reg.EmailAddress, "two", "# two")
	require.NoError(t, err)

	all, err := m.Download(models.DownloadRequest{VaultIdentifier: "v1", Passkey: reg.Passkey})
	require.NoError(t, err)
	require.Len(t, all.Notes, 2)
	assert.Equal(t, "one", all.Notes[0].Title)
	assert.Equal(t, int64(2), *all.QuotaUsed)
	assert.Nil(t, all.QuotaLimit)

	atBoundary, err := m.Download(models.DownloadRequest{VaultIdentifier: "v1", Passkey: reg.Passkey, Since: first.Created})
	require.NoError(t, err)
	require.Len(t, atBoundary.Notes, 2, "a note created exactly at since is returned")
	assert.Equal(t, "one", atBoundary.Notes[0].Title)

	later, err := m.Download(models.DownloadRequest{VaultIdentifier: "v1", Passkey: reg.Passkey, Since: first.Created.Add(time.Nanosecond)})
	require.NoError(t, err)
	require.Len(t, later.Notes, 1)
	assert.Equal(t, "two", later.Notes[0].Title)
}

func TestMailbox_QuotaDropsNotes(t *testing.T) {
	m := newTestMailbox(1)
	reg, err := m.Register(models.RegisterRequest{VaultIdentifier: "v1"}, false)
	require.NoError(t, err)

	_, err = m.Deliver(reg.EmailAddress, "kept", "")
	require.NoError(t, err)
	dropped, err := m.Deliver(reg.EmailAddress, "dropped", "")
	require.NoError(t, err)
	assert.Empty(t, dropped.ID)

	resp, err := m.Download(models.DownloadRequest{VaultIdentifier: "v1", Passkey: reg.Passkey})
	require.NoError(t, err)
	assert.True(t, resp.OverQuota)
	assert.Len(t, resp.Notes, 1)
	assert.Equal(t, int64(1), *resp.QuotaLimit)
}

func TestMailbox_DownloadUnknownVault(t *testing.T) {
	m := newTestMailbox(0)

	_, err := m.Download(models.DownloadRequest{VaultIdentifier: "nope"})
	assert.ErrorIs(t, err, ErrUnknownVault)
}
