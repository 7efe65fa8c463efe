// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-mail-notes/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrTransport):
		return fmt.Errorf("%w: %w", ErrNetwork, err)

	case errors.Is(err, adapter.ErrDecode):
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)

	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w: %w", ErrServer, ErrInvalidCredential, err)

	case adapter.IsStatusError(err):
		return fmt.Errorf("%w: %w", ErrServer, err)
	}

	return err
}

// UserMessage renders err as a sentence suitable for a toast or dialog.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrNetwork):
		return "Could not reach the notes service. Check your connection and try again."
	case errors.Is(err, ErrInvalidCredential):
		return "The notes service rejected this installation's credentials. Try rotating your address."
	case errors.Is(err, adapter.ErrTooManyRequests):
		return "The notes service is busy. Please try again later."
	case errors.Is(err, ErrServer):
		if body := extractBody(err); body != "" {
			return "The notes service returned an error: " + body
		}
		return "The notes service returned an error."
	case errors.Is(err, ErrInvalidResponse):
		return "The notes service sent an unexpected response."
	case errors.Is(err, ErrIO):
		return "A note could not be saved to your vault."
	case errors.Is(err, ErrNotRegistered):
		return "This installation is not registered yet."
	}

	return "Something went wrong: " + err.Error()
}

// extractBody returns the text after the last ": " of a status error,
// which is the response body produced by the adapter.
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.LastIndex(msg, ": "); idx != -1 {
		return strings.TrimSpace(msg[idx+2:])
	}
	return ""
}
