package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-mail-notes/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientRegistrationService obtains and maintains the credentials issued by the
// remote service for this installation.
type ClientRegistrationService interface {
	// Register performs one registration exchange for vaultIdentifier. With
	// rotate set, an existing alias is replaced instead of created. Nothing is
	// persisted; the caller stores the result.
	// Returns an error wrapping ErrNetwork, ErrServer or ErrInvalidResponse.
	Register(ctx context.Context, vaultIdentifier string, rotate bool) (models.Credentials, error)

	// Bootstrap returns the stored credentials, registering first when none
	// exist. A vault identifier is generated and persisted on first use. After
	// a fresh registration the Notifier is asked to show the first-run prompt.
	Bootstrap(ctx context.Context) (models.Credentials, error)

	// Rotate replaces identity, secret and alias with a new registration for
	// the same vault identifier. Stored credentials are left untouched when
	// the exchange fails.
	Rotate(ctx context.Context) (models.Credentials, error)
}

// ClientSyncEngine performs poll attempts against the remote service and owns
// the cursor, quota and backoff state.
type ClientSyncEngine interface {
	// Load reads the persisted sync state. Poll calls it on first use.
	Load(ctx context.Context) error

	// Poll runs a single attempt. It is a no-op with Skipped set when the
	// host is in background or another attempt is in flight.
	// Transport and decode failures are returned after the backoff has been
	// increased; per-note failures are not errors.
	Poll(ctx context.Context) (models.PollResult, error)

	// NextDelay is the delay the scheduler should wait before the next attempt.
	NextDelay() time.Duration

	// Snapshot returns the last state pushed to subscribers.
	Snapshot() models.Snapshot

	// SetAutoOpen changes whether newly created note files are opened.
	SetAutoOpen(ctx context.Context, enabled bool) error

	// SetAlias updates the alias shown in snapshots, for example after a
	// registration or rotation.
	SetAlias(alias string)
}

// ClientNoteMaterializer writes remote notes into the vault staging folder.
type ClientNoteMaterializer interface {
	// Materialize writes note and returns its vault-relative path. created is
	// true when a new file was made; an existing file at the target path is
	// overwritten. New files are passed to the Opener when autoOpen is set.
	// Failures wrap ErrIO.
	Materialize(ctx context.Context, note models.NoteRecord, autoOpen bool) (path string, created bool, err error)
}

// ClientSyncJob drives the sync engine on a timer re-armed after every attempt.
type ClientSyncJob interface {
	// Run blocks, polling until ctx is cancelled or Stop is called.
	Run(ctx context.Context) error

	// Trigger requests an immediate attempt without moving the timer.
	// Triggers issued while one is pending are coalesced.
	Trigger()

	// Start runs the loop in a background goroutine. Any running loop is
	// stopped first.
	Start(ctx context.Context)

	// Stop cancels the loop, releases the timer and waits for it to exit.
	Stop()
}

// Notifier is the user-facing surface the engine reports through.
type Notifier interface {
	// Notify shows a toast-style message.
	Notify(event models.Event)
	// PromptFirstRun presents the alias right after the first registration.
	PromptFirstRun(creds models.Credentials)
	// PromptPaywall tells the user the import quota is exhausted.
	PromptPaywall()
	// Publish delivers the state after every attempt.
	Publish(snapshot models.Snapshot)
}

// Foreground reports whether the host is in foreground. Background hosts do
// not poll.
type Foreground interface {
	InForeground() bool
}

// Opener shows a vault file to the user.
type Opener interface {
	Open(path string) error
}

// IDGenerator produces vault identifiers.
type IDGenerator interface {
	Generate() string
}
