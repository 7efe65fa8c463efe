package models

// EventKind classifies a user-facing notification.
type EventKind int

const (
	// EventInfo is a neutral toast.
	EventInfo EventKind = iota
	// EventNoteImported is raised once per newly created note file.
	EventNoteImported
	// EventNoteFailed is raised when a single note could not be written.
	EventNoteFailed
	// EventQuotaExceeded is the soft over-quota signal. It is not an error.
	EventQuotaExceeded
	// EventRegistrationFailed carries a human-readable registration cause.
	EventRegistrationFailed
)

// Event is a single toast-style message for the notification surface.
type Event struct {
	Kind    EventKind
	Message string
	// Path is set for note events.
	Path string
}

func (k EventKind) String() string {
	switch k {
	case EventNoteImported:
		return "note_imported"
	case EventNoteFailed:
		return "note_failed"
	case EventQuotaExceeded:
		return "quota_exceeded"
	case EventRegistrationFailed:
		return "registration_failed"
	default:
		return "info"
	}
}
