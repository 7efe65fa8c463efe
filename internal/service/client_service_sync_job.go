package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-mail-notes/internal/logger"
)

const fallbackPollDelay = 30 * time.Second

type clientSyncJob struct {
	engine  ClientSyncEngine
	trigger chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientSyncJob creates a job driving engine. The job is idle until Run or
// Start is called.
func NewClientSyncJob(engine ClientSyncEngine, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{
		engine:  engine,
		trigger: make(chan struct{}, 1),
		logger:  logger,
	}
}

// Run implements ClientSyncJob. The first attempt starts immediately; every
// scheduled attempt re-arms the timer with engine.NextDelay. Triggered
// attempts leave the timer alone.
func (j *clientSyncJob) Run(ctx context.Context) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
			j.poll(ctx)
			timer.Reset(j.nextDelay())
		case <-j.trigger:
			j.poll(ctx)
		}
	}
}

func (j *clientSyncJob) poll(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	// failures are logged by the engine and retried on the next tick
	_, _ = j.engine.Poll(ctx)
}

func (j *clientSyncJob) nextDelay() time.Duration {
	d := j.engine.NextDelay()
	if d <= 0 {
		return fallbackPollDelay
	}
	return d
}

// Trigger implements ClientSyncJob.
func (j *clientSyncJob) Trigger() {
	select {
	case j.trigger <- struct{}{}:
	default:
		j.logger.Debug().Str("func", "clientSyncJob.Trigger").Msg("trigger already pending")
	}
}

// Start implements ClientSyncJob. It stops any previously running loop, then
// launches Run in a background goroutine that exits when ctx is cancelled or
// Stop is called.
func (j *clientSyncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		_ = j.Run(jobCtx)
	}()
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
