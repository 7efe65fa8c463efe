package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-mail-notes/internal/adapter"
	"github.com/MKhiriev/go-mail-notes/internal/logger"
	"github.com/MKhiriev/go-mail-notes/internal/store"
	"github.com/MKhiriev/go-mail-notes/models"
)

type clientRegistrationService struct {
	credentials   store.CredentialStore
	serverAdapter adapter.ServerAdapter
	ids           IDGenerator
	notifier      Notifier
	clientVersion string

	// serialises Bootstrap and Rotate
	mu sync.Mutex

	logger *logger.Logger
}

// NewClientRegistrationService creates a registration service that talks to
// serverAdapter and persists into credentials. clientVersion is sent with
// every registration request.
func NewClientRegistrationService(
	credentials store.CredentialStore,
	serverAdapter adapter.ServerAdapter,
	ids IDGenerator,
	notifier Notifier,
	clientVersion string,
	logger *logger.Logger,
) ClientRegistrationService {
	return &clientRegistrationService{
		credentials:   credentials,
		serverAdapter: serverAdapter,
		ids:           ids,
		notifier:      notifier,
		clientVersion: clientVersion,
		logger:        logger,
	}
}

func (s *clientRegistrationService) Register(ctx context.Context, vaultIdentifier string, rotate bool) (models.Credentials, error) {
	resp, err := s.serverAdapter.Register(ctx, models.RegisterRequest{
		ClientVersion:   s.clientVersion,
		VaultIdentifier: vaultIdentifier,
	}, rotate)
	if err != nil {
		return models.Credentials{}, mapAdapterError(err)
	}

	if missing := missingRegistrationFields(resp); len(missing) > 0 {
		return models.Credentials{}, fmt.Errorf("%w: missing %s", ErrInvalidResponse, strings.Join(missing, ", "))
	}

	return models.Credentials{
		Identity:        strings.TrimSpace(resp.VaultID),
		Secret:          strings.TrimSpace(resp.Passkey),
		Alias:           strings.TrimSpace(resp.EmailAddress),
		VaultIdentifier: vaultIdentifier,
		RegisteredAt:    resp.CreatedAt,
	}, nil
}

func (s *clientRegistrationService) Bootstrap(ctx context.Context) (models.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds, err := s.credentials.Load(ctx)
	switch {
	case err == nil && creds.IsComplete():
		return creds, nil
	case err == nil, errors.Is(err, store.ErrCredentialsNotFound):
	case errors.Is(err, store.ErrCorruptCredentials):
		s.logger.Warn().Err(err).
			Str("func", "clientRegistrationService.Bootstrap").
			Msg("stored credentials are unreadable, registering again")
	default:
		return models.Credentials{}, fmt.Errorf("loading credentials: %w", err)
	}

	vaultID, err := s.ensureVaultIdentifier(ctx, creds.VaultIdentifier)
	if err != nil {
		return models.Credentials{}, err
	}

	fresh, err := s.Register(ctx, vaultID, false)
	if err != nil {
		s.reportFailure("clientRegistrationService.Bootstrap", err)
		return models.Credentials{}, err
	}

	if err = s.credentials.Save(ctx, fresh); err != nil {
		return models.Credentials{}, fmt.Errorf("saving credentials: %w", err)
	}

	s.logger.Info().
		Str("func", "clientRegistrationService.Bootstrap").
		Str("alias", fresh.Alias).
		Msg("installation registered")

	s.notifier.PromptFirstRun(fresh)
	return fresh, nil
}

func (s *clientRegistrationService) Rotate(ctx context.Context) (models.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.credentials.Load(ctx)
	if errors.Is(err, store.ErrCredentialsNotFound) {
		return models.Credentials{}, ErrNotRegistered
	}
	if err != nil {
		return models.Credentials{}, fmt.Errorf("loading credentials: %w", err)
	}

	fresh, err := s.Register(ctx, current.VaultIdentifier, true)
	if err != nil {
		s.reportFailure("clientRegistrationService.Rotate", err)
		return models.Credentials{}, err
	}

	next := current.Rotated(fresh)
	if err = s.credentials.Save(ctx, next); err != nil {
		return models.Credentials{}, fmt.Errorf("saving credentials: %w", err)
	}

	s.logger.Info().
		Str("func", "clientRegistrationService.Rotate").
		Str("alias", next.Alias).
		Msg("alias rotated")

	s.notifier.Notify(models.Event{
		Kind:    models.EventInfo,
		Message: "Your import address is now " + next.Alias,
	})
	return next, nil
}

func (s *clientRegistrationService) ensureVaultIdentifier(ctx context.Context, known string) (string, error) {
	if known != "" {
		return known, nil
	}

	id := s.ids.Generate()
	if err := s.credentials.SaveVaultIdentifier(ctx, id); err != nil {
		return "", fmt.Errorf("saving vault identifier: %w", err)
	}

	s.logger.Debug().
		Str("func", "clientRegistrationService.ensureVaultIdentifier").
		Str("vault_identifier", id).
		Msg("generated vault identifier")
	return id, nil
}

func (s *clientRegistrationService) reportFailure(fn string, err error) {
	s.logger.Err(err).Str("func", fn).Msg("registration failed")
	s.notifier.Notify(models.Event{
		Kind:    models.EventRegistrationFailed,
		Message: UserMessage(err),
	})
}

func missingRegistrationFields(resp models.RegisterResponse) []string {
	var missing []string
	if strings.TrimSpace(resp.VaultID) == "" {
		missing = append(missing, "vault_id")
	}
	if strings.TrimSpace(resp.Passkey) == "" {
		missing = append(missing, "passkey")
	}
	if strings.TrimSpace(resp.EmailAddress) == "" {
		missing = append(missing, "email_address")
	}
	return missing
}
