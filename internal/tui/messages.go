package tui

import (
	"github.com/MKhiriev/go-mail-notes/models"
)

type snapshotMsg struct {
	snapshot models.Snapshot
}

type eventMsg struct {
	event models.Event
}

type firstRunMsg struct {
	creds models.Credentials
}

type paywallMsg struct{}

type copiedMsg struct {
	err error
}

type autoOpenDoneMsg struct {
	enabled bool
	err     error
}

type rotateDoneMsg struct {
	creds models.Credentials
	err   error
}

type tickMsg struct{}

type clearStatusMsg struct{}
