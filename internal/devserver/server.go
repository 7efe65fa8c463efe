package devserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-mail-notes/internal/config"
	"github.com/MKhiriev/go-mail-notes/internal/logger"
)

// Server runs the notes service over HTTP. It implements workers.Worker.
type Server struct {
	server          *http.Server
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func NewServer(cfg config.DevServerConfig, logger *logger.Logger) *Server {
	handler := NewHandler(NewMailbox(cfg.MailDomain, cfg.QuotaLimit), logger)
	return &Server{
		server: &http.Server{
			Addr:              cfg.Address,
			Handler:           handler.Init(),
			ReadHeaderTimeout: 5 * time.Second,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", s.server.Addr).Msg("launching HTTP server")
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP server ListenAndServe: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server Shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}
