package adapter

import "errors"

// Transport-level errors. Status errors are produced by mapHTTPError; callers
// should match them with [errors.Is].
var (
	// ErrTransport wraps connectivity failures: DNS, refused connections,
	// TLS errors, timeouts and cancelled contexts.
	ErrTransport = errors.New("transport error")

	// ErrDecode is returned when a 2xx response body cannot be decoded.
	ErrDecode = errors.New("cannot decode response")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrUnexpectedStatus covers every other non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// IsStatusError reports whether err was produced from a non-2xx response.
func IsStatusError(err error) bool {
	for _, target := range []error{
		ErrBadRequest, ErrUnauthorized, ErrForbidden, ErrNotFound, ErrConflict,
		ErrTooManyRequests, ErrInternalServerError, ErrBadGateway,
		ErrServiceUnavailable, ErrUnexpectedStatus,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
