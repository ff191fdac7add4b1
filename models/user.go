// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the generated unique identifier of the user (UUIDv7).
	UserID string `json:"id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique, immutable login identifier of the user.
	// It is stored trimmed and lower-cased.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// The plaintext password is never persisted or returned.
	PasswordHash string `json:"-"`

	// ResetTokenDigest is the keyed digest of the pending password-reset
	// token, or nil when no reset is pending.
	ResetTokenDigest *string `json:"-"`

	// ResetTokenExpiry is the moment the pending reset token stops being
	// accepted. Nil when no reset is pending.
	ResetTokenExpiry *time.Time `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`

	// UpdatedAt is refreshed whenever the name or password changes.
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Profile returns the public view of the user.
func (u User) Profile() UserProfile {
	return UserProfile{ID: u.UserID, Name: u.Name, Email: u.Email}
}

// HasPendingReset reports whether a reset token is stored for the user.
func (u User) HasPendingReset() bool {
	return u.ResetTokenDigest != nil && u.ResetTokenExpiry != nil
}
