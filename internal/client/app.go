package client

import (
	"context"
	"time"

	"github.com/MKhiriev/go-mail-notes/internal/config"
	"github.com/MKhiriev/go-mail-notes/internal/logger"
	"github.com/MKhiriev/go-mail-notes/internal/service"
	"github.com/MKhiriev/go-mail-notes/internal/workers"
	"github.com/MKhiriev/go-mail-notes/models"
)

// App owns the process lifecycle: registration, the polling scheduler and,
// unless headless, the status panel.
type App struct {
	services *service.ClientServices
	ui       workers.Worker
	backoff  models.BackoffState
	logger   *logger.Logger
}

// NewApp creates the application. ui may be nil for a headless run.
func NewApp(services *service.ClientServices, ui workers.Worker, cfg config.ClientWorkers, logger *logger.Logger) *App {
	return &App{
		services: services,
		ui:       ui,
		backoff:  models.NewBackoffState(cfg.MinDelay, cfg.MaxDelay),
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled or the status panel is closed.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Bool("headless", a.ui == nil).Msg("starting mail notes client")

	group := workers.New(workers.Func(a.runSync))
	if a.ui != nil {
		group.Add(a.ui)
	}

	err := group.Run(ctx)
	a.logger.Info().Err(err).Msg("mail notes client stopped")
	return err
}

// runSync registers the installation, then drives the scheduler. The status
// panel must already be running: first-run prompts are delivered to it.
func (a *App) runSync(ctx context.Context) error {
	creds, ok := a.bootstrap(ctx)
	if !ok {
		return nil
	}

	a.services.SyncEngine.SetAlias(creds.Alias)
	a.logger.Info().Str("alias", creds.Alias).Msg("registered, starting sync")

	return a.services.SyncJob.Run(ctx)
}

// bootstrap retries registration with backoff until it succeeds or ctx ends.
func (a *App) bootstrap(ctx context.Context) (models.Credentials, bool) {
	for {
		creds, err := a.services.Registration.Bootstrap(ctx)
		if err == nil {
			a.backoff.Reset()
			return creds, true
		}

		a.backoff.Fail()
		a.logger.Warn().Err(err).
			Str("func", "App.bootstrap").
			Dur("retry_in", a.backoff.CurrentDelay).
			Msg(service.UserMessage(err))

		timer := time.NewTimer(a.backoff.CurrentDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return models.Credentials{}, false
		case <-timer.C:
		}
	}
}
