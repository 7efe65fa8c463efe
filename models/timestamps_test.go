package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		in   string
		want time.Time
	}{
		{in: "2026-03-09T08:00:00Z", want: want},
		{in: "2026-03-09T10:00:00+02:00", want: want},
		{in: "2026-03-09T08:00:00.250Z", want: want.Add(250 * time.Millisecond)},
		{in: "2026-03-09T08:00:00", want: want},
		{in: "2026-03-09T08:00:00.5", want: want.Add(500 * time.Millisecond)},
		{in: "2026-03-09T09:00:00+0100", want: want},
		{in: "2026-03-09 08:00:00", want: want},
		{in: "2026-03-09T08:00", want: want},
		{in: "2026-03-09", want: want.Add(-8 * time.Hour)},
		{in: "  ", want: time.Time{}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}

	for _, bad := range []string{"yesterday", "09/03/2026", "2026-13-01T00:00:00"} {
		_, err := ParseTimestamp(bad)
		assert.ErrorIs(t, err, ErrBadTimestamp, bad)
	}
}

func TestNoteRecord_UnmarshalKeepsOtherFields(t *testing.T) {
	var notes []NoteRecord
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id": "a", "title": "A", "markdown": "# A", "created_iso": "2026-03-09T08:00:00"},
		{"id": "b", "title": "B", "markdown": "# B", "created_iso": "soon"},
		{"id": "c", "title": "C", "markdown": "# C"}
	]`), &notes))

	require.Len(t, notes, 3)
	assert.Equal(t, NoteRecord{ID: "a", Title: "A", Markdown: "# A", Created: time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)}, notes[0])
	assert.Equal(t, NoteRecord{ID: "b", Title: "B", Markdown: "# B"}, notes[1])
	assert.False(t, notes[2].HasTimestamp())
}

func TestNoteRecord_RoundTripsOwnEncoding(t *testing.T) {
	in := NoteRecord{ID: "a", Created: time.Date(2026, 3, 9, 8, 0, 0, 123, time.UTC)}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out NoteRecord
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, in.Created.Equal(out.Created))
}

func TestRegisterResponse_UnreadableCreatedAt(t *testing.T) {
	var r RegisterResponse
	require.NoError(t, json.Unmarshal([]byte(`{"email_address": "x@y", "passkey": "p", "vault_id": "v", "created_at": "n/a"}`), &r))
	assert.Equal(t, RegisterResponse{EmailAddress: "x@y", Passkey: "p", VaultID: "v"}, r)
}
