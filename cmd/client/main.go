package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-mail-notes/internal/adapter"
	"github.com/MKhiriev/go-mail-notes/internal/client"
	"github.com/MKhiriev/go-mail-notes/internal/config"
	"github.com/MKhiriev/go-mail-notes/internal/logger"
	"github.com/MKhiriev/go-mail-notes/internal/notify"
	"github.com/MKhiriev/go-mail-notes/internal/service"
	"github.com/MKhiriev/go-mail-notes/internal/store"
	"github.com/MKhiriev/go-mail-notes/internal/tui"
	"github.com/MKhiriev/go-mail-notes/internal/vault"
	"github.com/MKhiriev/go-mail-notes/internal/workers"
	"github.com/MKhiriev/go-mail-notes/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := newBuildInfo()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}
	if cfg.App.Headless {
		printBuildInfo(buildInfo)
	}

	log := logger.NewClientLogger("mail-notes-client", cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	notesVault := vault.NewOS(cfg.Storage.Vault)
	if err = notesVault.EnsureDir(cfg.Storage.Vault.StagingFolder); err != nil {
		log.Fatal().Err(err).Str("vault", cfg.Storage.Vault.Root).Msg("prepare vault")
	}

	// headless runs are always considered in the foreground
	foreground := notify.NewAtomicForeground(true)
	fanout := notify.NewFanout(notify.NewLogNotifier(log))

	services := service.NewClientServices(cfg, storages, serverAdapter, notesVault, service.ClientHost{
		Notifier:   fanout,
		Foreground: foreground,
		Opener:     vault.NewExecOpener(notesVault, log),
	}, log)

	var ui workers.Worker
	if !cfg.App.Headless {
		panel := tui.New(ctx, services, foreground, buildInfo, log)
		fanout.Add(panel)
		ui = panel
	}

	app := client.NewApp(services, ui, cfg.Workers, log)
	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		_ = storages.Close()
		os.Exit(1)
	}
}

func newBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
