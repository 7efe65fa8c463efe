package devserver

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-mail-notes/models"
)

type account struct {
	vaultIdentifier string
	vaultID         string
	passkey         string
	alias           string
	createdAt       time.Time

	notes     []models.NoteRecord
	used      int64
	overQuota bool
}

// Mailbox holds every account and its notes. All methods are safe for
// concurrent use.
type Mailbox struct {
	mu      sync.Mutex
	byVault map[string]*account
	byAlias map[string]*account

	domain     string
	quotaLimit int64
	now        func() time.Time
}

// NewMailbox returns an empty mailbox. A quotaLimit of zero disables the
// quota.
func NewMailbox(domain string, quotaLimit int64) *Mailbox {
	return &Mailbox{
		byVault:    make(map[string]*account),
		byAlias:    make(map[string]*account),
		domain:     domain,
		quotaLimit: quotaLimit,
		now:        time.Now,
	}
}

// Register returns the account of vaultIdentifier, creating it on first use.
// With rotate set, an existing account gets a fresh alias and passkey; mail to
// the old alias is no longer accepted.
func (m *Mailbox) Register(req models.RegisterRequest, rotate bool) (models.RegisterResponse, error) {
	vaultIdentifier := strings.TrimSpace(req.VaultIdentifier)
	if vaultIdentifier == "" {
		return models.RegisterResponse{}, fmt.Errorf("%w: vault_identifier is required", ErrInvalidRequest)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	acc, ok := m.byVault[vaultIdentifier]
	switch {
	case !ok:
		acc = &account{
			vaultIdentifier: vaultIdentifier,
			vaultID:         uuid.NewString(),
			createdAt:       m.now().UTC(),
		}
		m.byVault[vaultIdentifier] = acc
		m.issue(acc)
	case rotate:
		delete(m.byAlias, acc.alias)
		m.issue(acc)
	}

	return models.RegisterResponse{
		EmailAddress: acc.alias,
		Passkey:      acc.passkey,
		VaultID:      acc.vaultID,
		CreatedAt:    acc.createdAt,
	}, nil
}

func (m *Mailbox) issue(acc *account) {
	acc.passkey = uuid.NewString()
	acc.alias = strings.ReplaceAll(uuid.NewString(), "-", "")[:12] + "@" + strings.ToLower(m.domain)
	m.byAlias[acc.alias] = acc
}

// Deliver stores a note sent to alias. When the account is over its quota
// the note is dropped and the account flagged.
func (m *Mailbox) Deliver(alias, title, markdown string) (models.NoteRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	acc, ok := m.byAlias[strings.ToLower(strings.TrimSpace(alias))]
	if !ok {
		return models.NoteRecord{}, fmt.Errorf("%w: %s", ErrUnknownAlias, alias)
	}

	if m.quotaLimit > 0 && acc.used >= m.quotaLimit {
		acc.overQuota = true
		return models.NoteRecord{}, nil
	}

	note := models.NoteRecord{
		ID:       uuid.NewString(),
		Title:    title,
		Markdown: markdown,
		Created:  m.now().UTC(),
	}
	acc.notes = append(acc.notes, note)
	acc.used++
	return note, nil
}

// Download returns the notes created after req.Since in creation order.
func (m *Mailbox) Download(req models.DownloadRequest) (models.DownloadResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	acc, ok := m.byVault[req.VaultIdentifier]
	if !ok {
		return models.DownloadResponse{}, fmt.Errorf("%w: %s", ErrUnknownVault, req.VaultIdentifier)
	}
	if req.Passkey != acc.passkey {
		return models.DownloadResponse{}, ErrWrongPasskey
	}

	notes := make([]models.NoteRecord, 0)
	for _, n := range acc.notes {
		if !n.Created.Before(req.Since) {
			notes = append(notes, n)
		}
	}
	sort.SliceStable(notes, func(i, j int) bool { return notes[i].Created.Before(notes[j].Created) })

	used := acc.used
	resp := models.DownloadResponse{
		Notes:     notes,
		OverQuota: acc.overQuota,
		QuotaUsed: &used,
	}
	if m.quotaLimit > 0 {
		limit := m.quotaLimit
		resp.QuotaLimit = &limit
	}
	return resp, nil
}
