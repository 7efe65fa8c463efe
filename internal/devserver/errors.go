package devserver

import "errors"

var (
	// ErrInvalidRequest is returned for missing or malformed fields.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUnknownVault is returned when no account exists for a vault identifier.
	ErrUnknownVault = errors.New("unknown vault")
	// ErrUnknownAlias is returned when mail is submitted to an alias nobody owns.
	ErrUnknownAlias = errors.New("unknown alias")
	// ErrWrongPasskey is returned when the passkey does not match the account.
	ErrWrongPasskey = errors.New("wrong passkey")
)
