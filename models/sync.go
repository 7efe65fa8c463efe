// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultLookback is how far back the first download reaches when no cursor
// has been stored yet.
const DefaultLookback = 24 * time.Hour

// SyncCursor is the watermark below which notes are assumed already imported.
type SyncCursor struct {
	LastSyncTimestamp time.Time
}

// Since returns the timestamp to send with the next download request.
func (c SyncCursor) Since(now time.Time) time.Time {
	if c.LastSyncTimestamp.IsZero() {
		return now.Add(-DefaultLookback)
	}
	return c.LastSyncTimestamp
}

// Advance moves the cursor to ts if ts is later than the current value.
// The cursor never moves backward.
func (c SyncCursor) Advance(ts time.Time) SyncCursor {
	if ts.After(c.LastSyncTimestamp) {
		c.LastSyncTimestamp = ts
	}
	return c
}

// QuotaState holds usage counters. Used and Limit mirror the latest successful
// download response; ImportsThisPeriod is counted locally.
type QuotaState struct {
	Used              int64
	Limit             int64
	ImportsThisPeriod int64
}

// SyncState is everything the sync engine persists between attempts.
type SyncState struct {
	Cursor           SyncCursor
	Quota            QuotaState
	AutoOpenImported bool
	OverQuota        bool
	LastAttemptAt    time.Time
	LastSuccessAt    time.Time
	LastError        string
}

// PollResult is the outcome of a single poll attempt.
type PollResult struct {
	// Skipped is set when the attempt did not contact the server, either
	// because the host is in background or another attempt is in flight.
	Skipped bool

	ProcessedCount  int
	FailedCount     int
	LatestTimestamp time.Time
	OverQuota       bool
}

// Snapshot is the read-only view pushed to subscribers after every attempt.
type Snapshot struct {
	Alias         string
	Quota         QuotaState
	Cursor        SyncCursor
	OverQuota     bool
	AutoOpen      bool
	LastAttemptAt time.Time
	LastSuccessAt time.Time
	LastError     string
	NextPollIn    time.Duration
	LastResult    PollResult
}
