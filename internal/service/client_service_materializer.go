package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-mail-notes/internal/logger"
	"github.com/MKhiriev/go-mail-notes/internal/store"
	"github.com/MKhiriev/go-mail-notes/internal/vault"
	"github.com/MKhiriev/go-mail-notes/models"
)

const (
	illegalTitleChars = `*"\/<>:|?`
	titlePlaceholder  = '-'
	maxTitleRunes     = 120
	noteExtension     = ".md"
)

type clientNoteMaterializer struct {
	vault   *vault.Vault
	index   store.ImportedNoteRepository
	opener  Opener
	staging string
	now     func() time.Time

	logger *logger.Logger
}

// NewClientNoteMaterializer creates a materializer writing into stagingFolder
// of v. index may be nil, in which case target paths are always derived from
// the note title.
func NewClientNoteMaterializer(
	v *vault.Vault,
	index store.ImportedNoteRepository,
	opener Opener,
	stagingFolder string,
	logger *logger.Logger,
) ClientNoteMaterializer {
	return &clientNoteMaterializer{
		vault:   v,
		index:   index,
		opener:  opener,
		staging: filepath.ToSlash(stagingFolder),
		now:     time.Now,
		logger:  logger,
	}
}

func (m *clientNoteMaterializer) Materialize(ctx context.Context, note models.NoteRecord, autoOpen bool) (string, bool, error) {
	target := m.targetPath(ctx, note)

	exists, err := m.vault.Exists(target)
	if err != nil {
		return target, false, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if !exists {
		if err = m.vault.EnsureDir(path.Dir(target)); err != nil {
			return target, false, fmt.Errorf("%w: %w", ErrIO, err)
		}
	}

	if err = m.vault.Write(target, []byte(note.Markdown)); err != nil {
		return target, false, fmt.Errorf("%w: %w", ErrIO, err)
	}

	m.remember(ctx, note, target)

	if !exists && autoOpen && m.opener != nil {
		if err = m.opener.Open(target); err != nil {
			m.logger.Warn().Err(err).
				Str("func", "clientNoteMaterializer.Materialize").
				Str("path", target).
				Msg("cannot open imported note")
		}
	}

	return target, !exists, nil
}

// targetPath prefers the path a note id was written to before, as long as
// that file still exists.
func (m *clientNoteMaterializer) targetPath(ctx context.Context, note models.NoteRecord) string {
	derived := path.Join(m.staging, SanitizeTitle(note.Title, note.ID)+noteExtension)
	if m.index == nil || note.ID == "" {
		return derived
	}

	entry, err := m.index.Find(ctx, note.ID)
	if err != nil {
		if !errors.Is(err, store.ErrImportedNoteNotFound) {
			m.logger.Warn().Err(err).
				Str("func", "clientNoteMaterializer.targetPath").
				Str("note_id", note.ID).
				Msg("imported note index unavailable")
		}
		return derived
	}

	if ok, err := m.vault.Exists(entry.Path); err == nil && ok {
		return entry.Path
	}
	return derived
}

func (m *clientNoteMaterializer) remember(ctx context.Context, note models.NoteRecord, target string) {
	if m.index == nil || note.ID == "" {
		return
	}

	err := m.index.Save(ctx, models.ImportedNote{
		NoteID:     note.ID,
		Path:       target,
		Created:    note.Created,
		ImportedAt: m.now(),
	})
	if err != nil {
		m.logger.Warn().Err(err).
			Str("func", "clientNoteMaterializer.remember").
			Str("note_id", note.ID).
			Msg("cannot index imported note")
	}
}

// SanitizeTitle turns a note title into a file name without extension.
// Characters that are illegal in file names, control characters and leading
// dots become '-'. An empty result falls back to "Untitled <id>".
func SanitizeTitle(title, id string) string {
	if name := sanitizeName(title); name != "" {
		return name
	}
	if name := sanitizeName(id); name != "" {
		return "Untitled " + name
	}
	return "Untitled"
}

func sanitizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	leading := true
	for _, r := range strings.TrimSpace(s) {
		switch {
		case leading && r == '.':
			b.WriteRune(titlePlaceholder)
			continue
		case r == utf8.RuneError, unicode.IsControl(r), strings.ContainsRune(illegalTitleChars, r):
			b.WriteRune(titlePlaceholder)
		default:
			b.WriteRune(r)
		}
		leading = false
	}

	name := strings.TrimSpace(b.String())
	if utf8.RuneCountInString(name) > maxTitleRunes {
		name = strings.TrimSpace(string([]rune(name)[:maxTitleRunes]))
	}
	return name
}
