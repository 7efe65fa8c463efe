package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/MKhiriev/go-mail-notes/internal/config"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Vault is a notes directory backed by an afero file system.
type Vault struct {
	fs   afero.Fs
	root string
}

// New returns a Vault over fsys. root is the absolute location of the vault on
// disk and is only used to build paths for [Vault.Abs].
func New(fsys afero.Fs, root string) *Vault {
	return &Vault{fs: fsys, root: root}
}

// NewOS returns a Vault rooted at cfg.Root on the operating system's file
// system.
func NewOS(cfg config.ClientVault) *Vault {
	return New(afero.NewBasePathFs(afero.NewOsFs(), cfg.Root), cfg.Root)
}

// Clean normalises a vault-relative path and rejects paths leaving the root.
func Clean(p string) (string, error) {
	p = strings.ReplaceAll(p, `\`, "/")
	cleaned := path.Clean(p)
	if path.IsAbs(p) || cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("%w: %q", ErrPathOutsideVault, p)
	}
	return cleaned, nil
}

// Exists reports whether a regular file exists at p.
func (v *Vault) Exists(p string) (bool, error) {
	p, err := Clean(p)
	if err != nil {
		return false, err
	}

	info, err := v.fs.Stat(p)
	if isNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", p, err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("%w: %s", ErrNotAFile, p)
	}
	return true, nil
}

// EnsureDir creates dir and any missing parents.
func (v *Vault) EnsureDir(dir string) error {
	dir, err := Clean(dir)
	if err != nil {
		return err
	}
	if err = v.fs.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("creating folder %s: %w", dir, err)
	}
	return nil
}

// Write replaces the content of p with data, creating the file when missing.
// The parent folder must already exist.
func (v *Vault) Write(p string, data []byte) error {
	p, err := Clean(p)
	if err != nil {
		return err
	}
	if err = afero.WriteFile(v.fs, p, data, filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", p, err)
	}
	return nil
}

// Read returns the content of p.
func (v *Vault) Read(p string) ([]byte, error) {
	p, err := Clean(p)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(v.fs, p)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", p, err)
	}
	return data, nil
}

// Abs returns the on-disk location of the vault-relative path p.
func (v *Vault) Abs(p string) string {
	return filepath.Join(v.root, filepath.FromSlash(p))
}

// Root returns the vault root directory.
func (v *Vault) Root() string {
	return v.root
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err)
}
