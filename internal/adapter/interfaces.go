// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the client to talk to the
// go-notes server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel errors in
// errors.go, carrying the server's message, so callers can use [errors.Is]
// (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the go-notes server. The adapter
// keeps no session state: authenticated calls take the bearer token as an
// argument.
type ServerAdapter interface {
	// Register creates an account and returns it together with a token.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login exchanges credentials for a token.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	GetProfile(ctx context.Context, token string) (models.UserProfile, error)
	UpdateProfile(ctx context.Context, token string, req models.UpdateProfileRequest) (models.UserProfile, error)

	// ChangePassword returns the server confirmation message.
	ChangePassword(ctx context.Context, token string, req models.ChangePasswordRequest) (string, error)

	// ForgotPassword requests a reset token. The response carries the token
	// only when the server is configured to return it.
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (models.ForgotPasswordResponse, error)
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (string, error)

	// ListNotes returns the caller's notes, filtered by query when it is
	// not empty.
	ListNotes(ctx context.Context, token, query string) ([]models.Note, error)
	CreateNote(ctx context.Context, token string, req models.CreateNoteRequest) (models.Note, error)
	UpdateNote(ctx context.Context, token, noteID string, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, token, noteID string) (string, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
