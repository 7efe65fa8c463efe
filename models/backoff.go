package models

import "time"

// BackoffState tracks the delay before the next poll attempt.
// CurrentDelay always stays within [MinDelay, MaxDelay].
type BackoffState struct {
	CurrentDelay time.Duration
	MinDelay     time.Duration
	MaxDelay     time.Duration
}

// NewBackoffState returns a state starting at minDelay. If maxDelay is lower
// than minDelay it is raised to minDelay.
func NewBackoffState(minDelay, maxDelay time.Duration) BackoffState {
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	return BackoffState{CurrentDelay: minDelay, MinDelay: minDelay, MaxDelay: maxDelay}
}

// Reset sets the delay back to MinDelay after a successful attempt.
func (b *BackoffState) Reset() {
	b.CurrentDelay = b.MinDelay
}

// Fail doubles the delay, capped at MaxDelay.
func (b *BackoffState) Fail() {
	next := b.CurrentDelay * 2
	if next < b.MinDelay {
		next = b.MinDelay
	}
	if next > b.MaxDelay || next <= 0 {
		next = b.MaxDelay
	}
	b.CurrentDelay = next
}
