package vault

import "errors"

var (
	ErrPathOutsideVault = errors.New("path escapes the vault root")
	ErrNotAFile         = errors.New("path is a directory")
	ErrNoOpener         = errors.New("no file opener available on this platform")
)
