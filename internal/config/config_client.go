package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is reported to the remote service on registration.
	Version string
	// Headless disables the terminal status panel.
	Headless bool
	// AutoOpen seeds the persisted auto-open flag on first start.
	AutoOpen bool
	// LogFile is the rotating log file path.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the remote service.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientVault locates the directory imported notes are written to.
type ClientVault struct {
	// Root is the vault directory.
	Root string
	// StagingFolder is relative to Root.
	StagingFolder string
}

// StagingDir returns the absolute staging directory.
func (v ClientVault) StagingDir() string {
	return filepath.Join(v.Root, v.StagingFolder)
}

// ClientKeyring contains credential store settings.
type ClientKeyring struct {
	ServiceName  string
	FileDir      string
	FilePassword string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// Vault holds the notes directory.
	Vault ClientVault
	// Keyring holds the secret store settings.
	Keyring ClientKeyring
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// MinDelay is the polling delay after a successful attempt.
	MinDelay time.Duration
	// MaxDelay caps the polling delay after failures.
	MaxDelay time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the remote service address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains scheduler settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Version:  cfg.App.Version,
			Headless: cfg.App.Headless,
			AutoOpen: cfg.App.AutoOpen,
			LogFile:  cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			Vault: ClientVault{
				Root:          cfg.Storage.Vault.Dir,
				StagingFolder: cfg.Storage.Vault.StagingFolder,
			},
			Keyring: ClientKeyring{
				ServiceName:  cfg.Storage.Keyring.ServiceName,
				FileDir:      cfg.Storage.Keyring.FileDir,
				FilePassword: cfg.Storage.Keyring.FilePassword,
			},
		},
		Workers: ClientWorkers{
			MinDelay: cfg.Workers.MinDelay,
			MaxDelay: cfg.Workers.MaxDelay,
		},
	}
}
