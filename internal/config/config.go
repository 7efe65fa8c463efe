// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-mail-notes client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the reported client
	// version and UI mode.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local state database, the notes
	// vault directory and the credential keyring.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote service address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the polling delay bounds of the sync scheduler.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is sent to the remote service as client_version on
	// registration.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Headless disables the terminal status panel; notifications are only
	// written to the log.
	// Env: APP_HEADLESS
	Headless bool `env:"HEADLESS"`

	// AutoOpen makes newly created note files open in the default
	// application. Only used to seed the persisted flag on first start.
	// Env: APP_AUTO_OPEN
	AutoOpen bool `env:"AUTO_OPEN"`

	// LogFile is the path of the rotating JSON log file.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for all local persistence.
type Storage struct {
	// DB holds the SQLite state database settings.
	DB DB `envPrefix:"DB_"`

	// Vault holds the notes directory settings.
	Vault Vault `envPrefix:"VAULT_"`

	// Keyring holds the credential store settings.
	Keyring Keyring `envPrefix:"KEYRING_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Vault holds the location imported notes are written to.
type Vault struct {
	// Dir is the root of the notes vault.
	// Env: STORAGE_VAULT_DIR
	Dir string `env:"DIR"`

	// StagingFolder is the folder, relative to Dir, that receives imported
	// notes.
	// Env: STORAGE_VAULT_STAGING_FOLDER
	StagingFolder string `env:"STAGING_FOLDER"`
}

// Keyring holds settings for the OS keyring that stores the passkey.
type Keyring struct {
	// ServiceName is the keyring service the passkey is stored under.
	// Env: STORAGE_KEYRING_SERVICE
	ServiceName string `env:"SERVICE"`

	// FileDir is used by the encrypted file backend when no OS keyring is
	// available.
	// Env: STORAGE_KEYRING_FILE_DIR
	FileDir string `env:"FILE_DIR"`

	// FilePassword protects the file backend.
	// Env: STORAGE_KEYRING_FILE_PASSWORD
	FilePassword string `env:"FILE_PASSWORD"`
}

// Adapter holds configuration for the remote note service.
type Adapter struct {
	// HTTPAddress is the base URL of the remote service
	// (e.g. "https://notes.example.com/api").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds the backoff bounds of the sync scheduler.
type Workers struct {
	// MinDelay is the polling delay after a successful attempt.
	// Env: WORKERS_MIN_DELAY
	MinDelay time.Duration `env:"MIN_DELAY"`

	// MaxDelay caps the delay after repeated failures.
	// Env: WORKERS_MAX_DELAY
	MaxDelay time.Duration `env:"MAX_DELAY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. Earlier sources take precedence
// for non-zero fields:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
