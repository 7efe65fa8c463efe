package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-mail-notes/internal/config"
	"github.com/MKhiriev/go-mail-notes/internal/devserver"
	"github.com/MKhiriev/go-mail-notes/internal/logger"
	"github.com/MKhiriev/go-mail-notes/internal/workers"
)

func main() {
	log := logger.NewLogger("mail-notes-devserver")

	cfg, err := config.GetDevServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err = workers.New(devserver.NewServer(*cfg, log)).Run(ctx); err != nil {
		log.Error().Err(err).Msg("dev server stopped with error")
		stop()
		os.Exit(1)
	}
}
