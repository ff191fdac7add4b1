// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService covers account lifecycle and session tokens.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)

	GetProfile(ctx context.Context, userID string) (models.User, error)
	UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.User, error)
	ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error

	// RequestPasswordReset stores a new reset token for the account and
	// hands it to the configured delivery. The returned ticket carries the
	// token only when the delivery exposes it to the caller.
	RequestPasswordReset(ctx context.Context, req models.ForgotPasswordRequest) (models.PasswordResetTicket, error)

	// ResetPassword consumes a reset token. A token succeeds at most once.
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NoteService manages the notes of a single owner. Every method scopes its
// work to userID.
type NoteService interface {
	// List returns the owner's notes pinned first, most recently updated
	// first. A non-empty query keeps only notes containing it.
	List(ctx context.Context, userID, query string) ([]models.Note, error)
	Create(ctx context.Context, userID string, req models.CreateNoteRequest) (models.Note, error)
	Update(ctx context.Context, userID, noteID string, update models.NoteUpdate) (models.Note, error)
	Delete(ctx context.Context, userID, noteID string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ResetTokenDelivery hands a freshly generated reset token to the user.
// It returns the token when it should be exposed in the API response, or
// an empty string when it was delivered out of band.
type ResetTokenDelivery interface {
	Deliver(ctx context.Context, user models.User, token string) (string, error)
}
