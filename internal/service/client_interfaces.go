// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-notes/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for account
// operations. Register and Login save the returned session locally; every
// other authenticated call receives the session explicitly.
//
// A call rejected with an expired or invalid token clears the stored
// session and returns [ErrTokenIsExpiredOrInvalid].
type ClientAuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.Session, error)
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)

	// Logout removes the stored session. Logging out without a session is
	// not an error.
	Logout(ctx context.Context) error

	// Session loads the stored session or returns [ErrNotLoggedIn].
	Session(ctx context.Context) (models.Session, error)

	Profile(ctx context.Context, session models.Session) (models.UserProfile, error)

	// UpdateProfile changes the display name and refreshes the stored
	// session with it.
	UpdateProfile(ctx context.Context, session models.Session, name string) (models.UserProfile, error)
	ChangePassword(ctx context.Context, session models.Session, oldPassword, newPassword string) (string, error)

	ForgotPassword(ctx context.Context, email string) (models.ForgotPasswordResponse, error)
	ResetPassword(ctx context.Context, token, newPassword string) (string, error)
}

// ClientNoteService defines the client-side contract for managing notes of
// the signed-in user.
type ClientNoteService interface {
	List(ctx context.Context, session models.Session, query string) ([]models.Note, error)
	Create(ctx context.Context, session models.Session, title, content string) (models.Note, error)
	Update(ctx context.Context, session models.Session, noteID string, update models.NoteUpdate) (models.Note, error)
	SetPinned(ctx context.Context, session models.Session, noteID string, pinned bool) (models.Note, error)
	Delete(ctx context.Context, session models.Session, noteID string) (string, error)
}

// ClientAppInfoService reports build information of the client and server.
type ClientAppInfoService interface {
	ClientVersion() string
	ServerVersion(ctx context.Context) (string, error)
}
