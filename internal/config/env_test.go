// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION":   "1.4.0",
		"APP_HEADLESS":  "true",
		"APP_AUTO_OPEN": "true",
		"APP_LOG_FILE":  "/var/log/notes.log",

		"ADAPTER_ADDRESS":         "https://notes.example.com",
		"ADAPTER_REQUEST_TIMEOUT": "15s",

		"STORAGE_DB_DSN":                "/tmp/state.db",
		"STORAGE_VAULT_DIR":             "/home/me/Notes",
		"STORAGE_VAULT_STAGING_FOLDER":  "Inbox",
		"STORAGE_KEYRING_SERVICE":       "svc",
		"STORAGE_KEYRING_FILE_DIR":      "/tmp/keys",
		"STORAGE_KEYRING_FILE_PASSWORD": "pw",

		"WORKERS_MIN_DELAY": "10s",
		"WORKERS_MAX_DELAY": "5m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "1.4.0", cfg.App.Version)
	assert.True(t, cfg.App.Headless)
	assert.True(t, cfg.App.AutoOpen)
	assert.Equal(t, "/var/log/notes.log", cfg.App.LogFile)

	assert.Equal(t, "https://notes.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "/tmp/state.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/home/me/Notes", cfg.Storage.Vault.Dir)
	assert.Equal(t, "Inbox", cfg.Storage.Vault.StagingFolder)
	assert.Equal(t, "svc", cfg.Storage.Keyring.ServiceName)
	assert.Equal(t, "/tmp/keys", cfg.Storage.Keyring.FileDir)
	assert.Equal(t, "pw", cfg.Storage.Keyring.FilePassword)

	assert.Equal(t, 10*time.Second, cfg.Workers.MinDelay)
	assert.Equal(t, 5*time.Minute, cfg.Workers.MaxDelay)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"ADAPTER_ADDRESS": "https://notes.example.com",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "https://notes.example.com", cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Workers{}, cfg.Workers)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"WORKERS_MIN_DELAY": "soon",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{
				"WORKERS_MAX_DELAY": tt.envValue,
			})

			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Workers.MaxDelay)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		k := k
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_VERSION",
		"APP_HEADLESS",
		"APP_AUTO_OPEN",
		"APP_LOG_FILE",

		"ADAPTER_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",

		"STORAGE_DB_DSN",
		"STORAGE_VAULT_DIR",
		"STORAGE_VAULT_STAGING_FOLDER",
		"STORAGE_KEYRING_SERVICE",
		"STORAGE_KEYRING_FILE_DIR",
		"STORAGE_KEYRING_FILE_PASSWORD",

		"WORKERS_MIN_DELAY",
		"WORKERS_MAX_DELAY",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
