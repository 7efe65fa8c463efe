package models

import (
	"encoding/json"
	"time"
)

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	ClientVersion   string `json:"client_version"`
	VaultIdentifier string `json:"vault_identifier"`
}

// RegisterResponse is the body returned by POST /register.
// CreatedAt is informational and left zero when unreadable.
type RegisterResponse struct {
	EmailAddress string    `json:"email_address"`
	Passkey      string    `json:"passkey"`
	VaultID      string    `json:"vault_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func (r *RegisterResponse) UnmarshalJSON(data []byte) error {
	type plain RegisterResponse
	aux := struct {
		*plain
		CreatedAt json.RawMessage `json:"created_at"`
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.CreatedAt = decodeTimestamp(aux.CreatedAt)
	return nil
}

// DownloadRequest is the body of POST /download.
type DownloadRequest struct {
	VaultIdentifier string    `json:"vault_identifier"`
	Passkey         string    `json:"passkey"`
	Since           time.Time `json:"since"`
}

// DownloadResponse is the body returned by POST /download.
// QuotaUsed and QuotaLimit are nil when the server omits them.
type DownloadResponse struct {
	Notes      []NoteRecord `json:"notes"`
	OverQuota  bool         `json:"over_quota"`
	QuotaUsed  *int64       `json:"quota_used,omitempty"`
	QuotaLimit *int64       `json:"quota_limit,omitempty"`
}
