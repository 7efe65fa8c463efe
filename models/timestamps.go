package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// ErrBadTimestamp is returned by ParseTimestamp for input in no accepted layout.
var ErrBadTimestamp = errors.New("unrecognised timestamp")

// timestampLayouts are tried in order. Layouts without an offset are read as
// UTC. Fractional seconds are accepted after the seconds field in all of them.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp reads the ISO 8601 shapes the notes service is known to emit.
// An empty string yields the zero time and no error.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrBadTimestamp
}

// decodeTimestamp turns a raw JSON value into a time. Null, empty and
// unreadable values all give the zero time.
func decodeTimestamp(raw json.RawMessage) time.Time {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return time.Time{}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return time.Time{}
	}
	t, err := ParseTimestamp(s)
	if err != nil {
		return time.Time{}
	}
	return t
}
