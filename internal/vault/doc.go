// Package vault gives the client access to the notes vault directory.
//
// All paths handled by [Vault] are relative to the vault root and use forward
// slashes, so the same path can be stored in the imported-notes index and
// shown to the user. The file system is an afero.Fs, which lets tests run
// against an in-memory tree.
package vault
