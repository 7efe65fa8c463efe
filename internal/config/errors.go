package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidVaultConfigs indicates a missing vault directory or a staging
	// folder that escapes it.
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// required by the client (for example, missing version).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid scheduler settings
	// (for example, zero min delay or max below min).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)

// ErrInvalidDevServerConfigs indicates an unusable development server setup.
var ErrInvalidDevServerConfigs = errors.New("invalid dev server configuration")
