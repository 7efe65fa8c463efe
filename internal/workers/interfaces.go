// Package workers runs the long-lived loops of the client process as a
// single group.
//
// Every worker receives the group context. The group stops as soon as any
// worker returns, so quitting the status panel also stops the scheduler.
package workers

import "context"

// Worker is a blocking unit of background work.
//
// Run must return once ctx is cancelled. A nil return means the worker
// finished normally.
//
// Example implementation:
//
//	type ticker struct{}
//
//	func (t *ticker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// Func adapts an ordinary function to [Worker].
type Func func(ctx context.Context) error

// Run calls f(ctx).
func (f Func) Run(ctx context.Context) error {
	return f(ctx)
}
