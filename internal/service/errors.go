package service

import "errors"

var (
	// ErrNetwork means the remote service could not be reached.
	ErrNetwork = errors.New("network unavailable")
	// ErrServer means the remote service answered with a non-success status.
	ErrServer = errors.New("server error")
	// ErrInvalidResponse means the response body did not match the schema.
	ErrInvalidResponse = errors.New("invalid response")
	// ErrIO means a local file could not be written.
	ErrIO = errors.New("file write failed")

	ErrNotRegistered     = errors.New("installation is not registered")
	ErrInvalidCredential = errors.New("credentials were rejected")
)
