package models

import (
	"encoding/json"
	"time"
)

// NoteRecord is a single note produced by the remote service.
// Created is zero when the service sent no usable created_iso.
type NoteRecord struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Markdown string    `json:"markdown"`
	Created  time.Time `json:"created_iso"`
}

// HasTimestamp reports whether the note carries a usable creation time.
func (n NoteRecord) HasTimestamp() bool {
	return !n.Created.IsZero()
}

// UnmarshalJSON reads created_iso leniently so one malformed note does not
// fail the whole download.
func (n *NoteRecord) UnmarshalJSON(data []byte) error {
	type plain NoteRecord
	aux := struct {
		*plain
		Created json.RawMessage `json:"created_iso"`
	}{plain: (*plain)(n)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	n.Created = decodeTimestamp(aux.Created)
	return nil
}

// ImportedNote links a remote note id to the local file it was written to.
type ImportedNote struct {
	NoteID     string
	Path       string
	Created    time.Time
	ImportedAt time.Time
}
