// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the note-keeper command-line
// client to talk to the server.
//
// The primary abstraction is [ServerAdapter], which decouples the commands
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Non-2xx responses are turned into [*APIError] values by mapHTTPError. They
// unwrap to the sentinels in errors.go so callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrNotFound] for 404,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/note-keeper/models"
)

// ServerAdapter defines communication with the note-keeper server.
// Implementations are responsible for serialisation, authentication header
// management and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Info fetches the service banner.
	Info(ctx context.Context) (models.AppInfo, error)

	// Health fetches the health status. An unhealthy server yields
	// [ErrServiceUnavailable] together with the decoded status.
	Health(ctx context.Context) (models.HealthStatus, error)

	// Register creates an account and returns it. It does not log in.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login exchanges credentials for an access token using the OAuth2
	// password form and stores the token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.AccessTokenResponse, error)

	// Me returns the account the stored token belongs to.
	Me(ctx context.Context) (models.User, error)

	// ListNotes returns one window over the caller's notes.
	ListNotes(ctx context.Context, skip, limit int64) ([]models.Note, error)

	// CreateNote stores a new note with content.
	CreateNote(ctx context.Context, content string) (models.Note, error)

	// DeleteNote removes the caller's note noteID.
	DeleteNote(ctx context.Context, noteID int64) error
}
