// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts and their credential state.
type UserRepository interface {
	// CreateUser inserts user and returns the stored record.
	// Returns [ErrEmailAlreadyExists] when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail and FindUserByID return [ErrNoUserWasFound] when no
	// user matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	UpdateUserName(ctx context.Context, userID, name string) (models.User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error

	// SetResetToken stores digest and expiry for the user, replacing any
	// pending token.
	SetResetToken(ctx context.Context, userID, digest string, expiry time.Time) error

	// ResetPassword replaces the password of the user holding digest and
	// clears the token in one statement, provided the token expires after
	// now. Returns the user id, or [ErrResetTokenNotFound].
	ResetPassword(ctx context.Context, digest, passwordHash string, now time.Time) (string, error)

	// ClearResetToken removes the token with the given digest, if any.
	ClearResetToken(ctx context.Context, digest string) error

	// PurgeExpiredResetTokens clears every token that expired at or before
	// now and returns how many were cleared.
	PurgeExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)
}

// NoteRepository persists notes. Every mutation is scoped by owner so the
// ownership check and the write are one statement.
type NoteRepository interface {
	ListNotes(ctx context.Context, userID string) ([]models.Note, error)
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// UpdateNote and DeleteNote return [ErrNoteNotFound] when the note does
	// not exist or is owned by someone else.
	UpdateNote(ctx context.Context, userID, noteID string, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID string) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
