package service

import (
	"github.com/MKhiriev/go-mail-notes/internal/adapter"
	"github.com/MKhiriev/go-mail-notes/internal/config"
	"github.com/MKhiriev/go-mail-notes/internal/logger"
	"github.com/MKhiriev/go-mail-notes/internal/store"
	"github.com/MKhiriev/go-mail-notes/internal/utils"
	"github.com/MKhiriev/go-mail-notes/internal/vault"
)

// ClientHost bundles the capabilities supplied by the user-facing surface.
type ClientHost struct {
	Notifier   Notifier
	Foreground Foreground
	Opener     Opener
}

type ClientServices struct {
	Registration ClientRegistrationService
	Materializer ClientNoteMaterializer
	SyncEngine   ClientSyncEngine
	SyncJob      ClientSyncJob
}

func NewClientServices(
	cfg *config.ClientConfig,
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	v *vault.Vault,
	host ClientHost,
	logger *logger.Logger,
) *ClientServices {
	registration := NewClientRegistrationService(
		storages.Credentials,
		serverAdapter,
		utils.NewVaultIDGenerator(),
		host.Notifier,
		cfg.App.Version,
		logger,
	)
	materializer := NewClientNoteMaterializer(
		v,
		storages.ImportedNotes,
		host.Opener,
		cfg.Storage.Vault.StagingFolder,
		logger,
	)
	engine := NewClientSyncEngine(
		storages.State,
		storages.Credentials,
		serverAdapter,
		materializer,
		host.Notifier,
		host.Foreground,
		SyncEngineOptions{
			MinDelay: cfg.Workers.MinDelay,
			MaxDelay: cfg.Workers.MaxDelay,
			AutoOpen: cfg.App.AutoOpen,
		},
		logger,
	)

	return &ClientServices{
		Registration: registration,
		Materializer: materializer,
		SyncEngine:   engine,
		SyncJob:      NewClientSyncJob(engine, logger),
	}
}
