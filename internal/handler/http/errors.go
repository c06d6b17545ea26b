// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Client-facing error details.
const (
	detailCouldNotValidate     = "Could not validate credentials"
	detailIncorrectCredentials = "Incorrect email or password"
	detailEmailRegistered      = "Email already registered"
	detailNoteNotFound         = "Note not found"
	detailInvalidJSON          = "Invalid JSON was passed"
	detailInvalidData          = "Invalid data provided"
	detailInternal             = "Internal server error"
	detailNotFound             = "Not Found"
	detailMethodNotAllowed     = "Method Not Allowed"
	messageNoteDeleted         = "Note deleted successfully"
)
