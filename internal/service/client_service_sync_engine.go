package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-mail-notes/internal/adapter"
	"github.com/MKhiriev/go-mail-notes/internal/logger"
	"github.com/MKhiriev/go-mail-notes/internal/store"
	"github.com/MKhiriev/go-mail-notes/models"
)

// SyncEngineOptions configures a sync engine.
type SyncEngineOptions struct {
	MinDelay time.Duration
	MaxDelay time.Duration
	// AutoOpen seeds AutoOpenImported when no state has been stored yet.
	AutoOpen bool
	// Now defaults to time.Now.
	Now func() time.Time
}

type clientSyncEngine struct {
	state         store.StateRepository
	credentials   store.CredentialStore
	serverAdapter adapter.ServerAdapter
	materializer  ClientNoteMaterializer
	notifier      Notifier
	foreground    Foreground
	opts          SyncEngineOptions

	// pollMu is held for the whole attempt and only ever TryLock'ed.
	pollMu sync.Mutex

	// mu guards everything below.
	mu           sync.Mutex
	loaded       bool
	current      models.SyncState
	backoff      models.BackoffState
	alias        string
	paywallShown bool
	snapshot     models.Snapshot

	logger *logger.Logger
}

// NewClientSyncEngine creates an engine. State is read lazily on the first
// call to Load or Poll.
func NewClientSyncEngine(
	state store.StateRepository,
	credentials store.CredentialStore,
	serverAdapter adapter.ServerAdapter,
	materializer ClientNoteMaterializer,
	notifier Notifier,
	foreground Foreground,
	opts SyncEngineOptions,
	logger *logger.Logger,
) ClientSyncEngine {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &clientSyncEngine{
		state:         state,
		credentials:   credentials,
		serverAdapter: serverAdapter,
		materializer:  materializer,
		notifier:      notifier,
		foreground:    foreground,
		opts:          opts,
		backoff:       models.NewBackoffState(opts.MinDelay, opts.MaxDelay),
		logger:        logger,
	}
}

func (e *clientSyncEngine) Load(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loadLocked(ctx)
}

func (e *clientSyncEngine) loadLocked(ctx context.Context) error {
	if e.loaded {
		return nil
	}

	state, found, err := e.state.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading sync state: %w", err)
	}
	if !found {
		state.AutoOpenImported = e.opts.AutoOpen
	}

	e.current = state
	e.loaded = true
	e.snapshot = e.buildSnapshotLocked(models.PollResult{})
	return nil
}

func (e *clientSyncEngine) Poll(ctx context.Context) (models.PollResult, error) {
	if !e.pollMu.TryLock() {
		e.logger.Debug().Str("func", "clientSyncEngine.Poll").Msg("poll already in flight, skipping")
		return models.PollResult{Skipped: true}, nil
	}
	defer e.pollMu.Unlock()

	if e.foreground != nil && !e.foreground.InForeground() {
		return models.PollResult{Skipped: true}, nil
	}

	now := e.opts.Now()

	if err := e.Load(ctx); err != nil {
		return e.fail(ctx, now, err)
	}

	creds, err := e.credentials.Load(ctx)
	if err == nil && !creds.IsComplete() {
		err = store.ErrCredentialsNotFound
	}
	if err != nil {
		if errors.Is(err, store.ErrCredentialsNotFound) {
			err = fmt.Errorf("%w: %w", ErrNotRegistered, err)
		}
		return e.fail(ctx, now, err)
	}

	e.mu.Lock()
	e.alias = creds.Alias
	since := e.current.Cursor.Since(now)
	autoOpen := e.current.AutoOpenImported
	e.mu.Unlock()

	resp, err := e.serverAdapter.Download(ctx, models.DownloadRequest{
		VaultIdentifier: creds.VaultIdentifier,
		Passkey:         creds.Secret,
		Since:           since,
	})
	if err != nil {
		return e.fail(ctx, now, mapAdapterError(err))
	}

	result := e.materializeAll(ctx, resp.Notes, autoOpen)
	result.OverQuota = resp.OverQuota

	e.mu.Lock()
	e.backoff.Reset()
	e.current.Quota = ApplyQuota(e.current.Quota, resp, result.ProcessedCount)
	if result.ProcessedCount > 0 {
		e.current.Cursor = e.current.Cursor.Advance(result.LatestTimestamp)
	}
	e.current.OverQuota = resp.OverQuota
	e.current.LastAttemptAt = now
	e.current.LastSuccessAt = now
	e.current.LastError = ""
	promptPaywall := resp.OverQuota && !e.paywallShown
	e.paywallShown = resp.OverQuota
	e.persistLocked(ctx)
	e.snapshot = e.buildSnapshotLocked(result)
	snapshot := e.snapshot
	e.mu.Unlock()

	e.logger.Info().
		Str("func", "clientSyncEngine.Poll").
		Int("processed", result.ProcessedCount).
		Int("failed", result.FailedCount).
		Bool("over_quota", result.OverQuota).
		Time("cursor", snapshot.Cursor.LastSyncTimestamp).
		Msg("poll finished")

	e.notifier.Publish(snapshot)
	if promptPaywall {
		e.notifier.Notify(models.Event{
			Kind:    models.EventQuotaExceeded,
			Message: "Your import quota for this period is used up.",
		})
		e.notifier.PromptPaywall()
	}

	return result, nil
}

// materializeAll writes notes in order. A failing note, including one without
// a usable timestamp, is reported and skipped.
func (e *clientSyncEngine) materializeAll(ctx context.Context, notes []models.NoteRecord, autoOpen bool) models.PollResult {
	var result models.PollResult

	for _, note := range notes {
		var (
			path    string
			created bool
			err     error
		)
		if note.HasTimestamp() {
			path, created, err = e.materializer.Materialize(ctx, note, autoOpen)
		} else {
			err = fmt.Errorf("%w: note %s has no readable created_iso", ErrInvalidResponse, note.ID)
		}
		if err != nil {
			result.FailedCount++
			e.logger.Err(err).
				Str("func", "clientSyncEngine.materializeAll").
				Str("note_id", note.ID).
				Str("path", path).
				Msg("cannot materialize note")
			e.notifier.Notify(models.Event{
				Kind:    models.EventNoteFailed,
				Message: fmt.Sprintf("Could not save %q: %s", note.Title, UserMessage(err)),
				Path:    path,
			})
			continue
		}

		result.ProcessedCount++
		if note.Created.After(result.LatestTimestamp) {
			result.LatestTimestamp = note.Created
		}
		if created {
			e.notifier.Notify(models.Event{
				Kind:    models.EventNoteImported,
				Message: "Imported " + path,
				Path:    path,
			})
		}
	}

	return result
}

func (e *clientSyncEngine) fail(ctx context.Context, now time.Time, err error) (models.PollResult, error) {
	e.mu.Lock()
	e.backoff.Fail()
	e.current.LastAttemptAt = now
	e.current.LastError = UserMessage(err)
	e.persistLocked(ctx)
	e.snapshot = e.buildSnapshotLocked(models.PollResult{})
	snapshot := e.snapshot
	e.mu.Unlock()

	e.logger.Warn().Err(err).
		Str("func", "clientSyncEngine.Poll").
		Dur("next_delay", snapshot.NextPollIn).
		Msg("poll failed")

	e.notifier.Publish(snapshot)
	return models.PollResult{}, err
}

// persistLocked is a no-op until state has been loaded, so a failed load
// never overwrites what is on disk.
func (e *clientSyncEngine) persistLocked(ctx context.Context) {
	if !e.loaded {
		return
	}
	if err := e.state.Save(ctx, e.current); err != nil {
		e.logger.Err(err).
			Str("func", "clientSyncEngine.persistLocked").
			Msg("cannot persist sync state")
	}
}

func (e *clientSyncEngine) buildSnapshotLocked(result models.PollResult) models.Snapshot {
	return models.Snapshot{
		Alias:         e.alias,
		Quota:         e.current.Quota,
		Cursor:        e.current.Cursor,
		OverQuota:     e.current.OverQuota,
		AutoOpen:      e.current.AutoOpenImported,
		LastAttemptAt: e.current.LastAttemptAt,
		LastSuccessAt: e.current.LastSuccessAt,
		LastError:     e.current.LastError,
		NextPollIn:    e.backoff.CurrentDelay,
		LastResult:    result,
	}
}

func (e *clientSyncEngine) NextDelay() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.backoff.CurrentDelay
}

func (e *clientSyncEngine) Snapshot() models.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot
}

func (e *clientSyncEngine) SetAutoOpen(ctx context.Context, enabled bool) error {
	e.mu.Lock()
	if err := e.loadLocked(ctx); err != nil {
		e.mu.Unlock()
		return err
	}

	e.current.AutoOpenImported = enabled
	if err := e.state.Save(ctx, e.current); err != nil {
		e.mu.Unlock()
		return fmt.Errorf("saving sync state: %w", err)
	}
	e.snapshot.AutoOpen = enabled
	snapshot := e.snapshot
	e.mu.Unlock()

	e.notifier.Publish(snapshot)
	return nil
}

func (e *clientSyncEngine) SetAlias(alias string) {
	e.mu.Lock()
	e.alias = alias
	e.snapshot.Alias = alias
	e.mu.Unlock()
}
