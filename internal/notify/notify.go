// Package notify provides host-side implementations of the notifier and
// foreground capabilities used by the sync engine.
package notify

import (
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-mail-notes/internal/logger"
	"github.com/MKhiriev/go-mail-notes/models"
)

// Notifier mirrors service.Notifier so this package does not import the
// service layer.
type Notifier interface {
	Notify(event models.Event)
	PromptFirstRun(creds models.Credentials)
	PromptPaywall()
	Publish(snapshot models.Snapshot)
}

// LogNotifier writes every notification to the structured log. It is the
// only surface in headless mode.
type LogNotifier struct {
	logger *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) Notify(event models.Event) {
	ev := n.logger.Info()
	if event.Kind == models.EventNoteFailed || event.Kind == models.EventRegistrationFailed {
		ev = n.logger.Warn()
	}
	ev.Str("kind", event.Kind.String()).
		Str("path", event.Path).
		Msg(event.Message)
}

func (n *LogNotifier) PromptFirstRun(creds models.Credentials) {
	n.logger.Info().
		Str("alias", creds.Alias).
		Msg("registered; send notes to this address to import them")
}

func (n *LogNotifier) PromptPaywall() {
	n.logger.Warn().Msg("import quota exceeded; upgrade to continue importing notes")
}

func (n *LogNotifier) Publish(snapshot models.Snapshot) {
	n.logger.Debug().
		Str("alias", snapshot.Alias).
		Int64("quota_used", snapshot.Quota.Used).
		Int64("quota_limit", snapshot.Quota.Limit).
		Int64("imports_this_period", snapshot.Quota.ImportsThisPeriod).
		Bool("over_quota", snapshot.OverQuota).
		Time("cursor", snapshot.Cursor.LastSyncTimestamp).
		Dur("next_poll_in", snapshot.NextPollIn).
		Msg("sync state")
}

// Fanout broadcasts to every notifier added to it, in order.
type Fanout struct {
	mu      sync.RWMutex
	targets []Notifier
}

func NewFanout(targets ...Notifier) *Fanout {
	return &Fanout{targets: targets}
}

// Add registers another notifier. Safe to call while notifications are sent.
func (f *Fanout) Add(n Notifier) {
	f.mu.Lock()
	f.targets = append(f.targets, n)
	f.mu.Unlock()
}

func (f *Fanout) each(fn func(Notifier)) {
	f.mu.RLock()
	targets := append([]Notifier(nil), f.targets...)
	f.mu.RUnlock()

	for _, t := range targets {
		fn(t)
	}
}

func (f *Fanout) Notify(event models.Event) {
	f.each(func(n Notifier) { n.Notify(event) })
}

func (f *Fanout) PromptFirstRun(creds models.Credentials) {
	f.each(func(n Notifier) { n.PromptFirstRun(creds) })
}

func (f *Fanout) PromptPaywall() {
	f.each(func(n Notifier) { n.PromptPaywall() })
}

func (f *Fanout) Publish(snapshot models.Snapshot) {
	f.each(func(n Notifier) { n.Publish(snapshot) })
}

// AtomicForeground is a foreground flag flipped by the UI.
type AtomicForeground struct {
	v atomic.Bool
}

// NewAtomicForeground returns a flag with the given initial value.
func NewAtomicForeground(initial bool) *AtomicForeground {
	f := &AtomicForeground{}
	f.v.Store(initial)
	return f
}

func (f *AtomicForeground) InForeground() bool {
	return f.v.Load()
}

// Set updates the flag and reports whether the host just came to foreground.
func (f *AtomicForeground) Set(foreground bool) (regained bool) {
	prev := f.v.Swap(foreground)
	return foreground && !prev
}
