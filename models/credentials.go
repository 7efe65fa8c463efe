// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Credentials is the identity material issued by the remote service for this
// installation.
//
// Identity and Secret are opaque tokens; Alias is the mail address notes are
// sent to. VaultIdentifier is generated locally once and never changes for the
// lifetime of the installation.
type Credentials struct {
	// Identity is the remote vault id ("vault_id" on the wire).
	Identity string `json:"vault_id"`

	// Secret is the remote passkey used to authenticate downloads.
	Secret string `json:"-"`

	// Alias is the address at which notes are submitted for import.
	Alias string `json:"email_address"`

	// VaultIdentifier is the locally generated installation id.
	VaultIdentifier string `json:"vault_identifier"`

	// RegisteredAt is the server-side creation time of the alias, if known.
	RegisteredAt time.Time `json:"created_at"`
}

// IsComplete reports whether every field required for a sync attempt is set.
func (c Credentials) IsComplete() bool {
	return c.Identity != "" && c.Secret != "" && c.Alias != "" && c.VaultIdentifier != ""
}

// Rotated returns a copy of c with identity, secret and alias replaced by the
// values of next. The vault identifier is preserved.
func (c Credentials) Rotated(next Credentials) Credentials {
	c.Identity = next.Identity
	c.Secret = next.Secret
	c.Alias = next.Alias
	c.RegisteredAt = next.RegisteredAt
	return c
}
