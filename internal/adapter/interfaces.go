// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the remote note service.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/JSON implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling. Connectivity failures wrap [ErrTransport]; undecodable bodies wrap
// [ErrDecode].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-mail-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the remote note
// service.
type ServerAdapter interface {
	// Register asks the service for an alias bound to req.VaultIdentifier.
	// When rotate is true an existing alias is replaced instead of created.
	// The response is returned as decoded; field validation is left to the
	// caller.
	Register(ctx context.Context, req models.RegisterRequest, rotate bool) (models.RegisterResponse, error)

	// Download fetches notes created after req.Since together with the
	// current quota counters.
	Download(ctx context.Context, req models.DownloadRequest) (models.DownloadResponse, error)
}
