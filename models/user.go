// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// User represents an account entity used for authentication and authorization.
// The password hash never leaves the server: it is excluded from JSON.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Email is the unique login identifier. It is always stored in the
	// normalized form produced by [NormalizeEmail].
	Email string `json:"email"`

	// FullName is the optional display name of the user.
	FullName string `json:"full_name"`

	// PasswordHash stores the bcrypt digest of the user's password.
	PasswordHash string `json:"-"`

	// IsActive reports whether the account may log in. New accounts are active.
	IsActive bool `json:"is_active"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// NormalizeEmail returns the canonical form of an email address used both
// when registering and when resolving a login or a token subject.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
