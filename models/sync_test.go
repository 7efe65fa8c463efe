package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSyncCursor_Since_DefaultsToLookback(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, now.Add(-24*time.Hour), SyncCursor{}.Since(now))
}

func TestSyncCursor_Since_UsesStoredValue(t *testing.T) {
	ts := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	c := SyncCursor{LastSyncTimestamp: ts}
	assert.Equal(t, ts, c.Since(time.Now()))
}

func TestSyncCursor_Advance_NeverRegresses(t *testing.T) {
	base := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	c := SyncCursor{LastSyncTimestamp: base}

	c = c.Advance(base.Add(-time.Hour))
	assert.Equal(t, base, c.LastSyncTimestamp)

	c = c.Advance(base.Add(time.Hour))
	assert.Equal(t, base.Add(time.Hour), c.LastSyncTimestamp)
}

func TestCredentials_Rotated_KeepsVaultIdentifier(t *testing.T) {
	old := Credentials{Identity: "v1", Secret: "s1", Alias: "a1@x", VaultIdentifier: "local"}
	next := old.Rotated(Credentials{Identity: "v2", Secret: "s2", Alias: "a2@x", VaultIdentifier: "ignored"})

	assert.Equal(t, "v2", next.Identity)
	assert.Equal(t, "s2", next.Secret)
	assert.Equal(t, "a2@x", next.Alias)
	assert.Equal(t, "local", next.VaultIdentifier)
	assert.True(t, next.IsComplete())
}
