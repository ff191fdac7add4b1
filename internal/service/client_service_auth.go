// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes/internal/adapter"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/models"
)

// sessionKeeper owns the stored session and drops it when the server
// rejects its token.
type sessionKeeper struct {
	sessions store.SessionRepository
	logger   *logger.Logger
}

// fail maps err and clears the stored session if the token was rejected.
func (k *sessionKeeper) fail(ctx context.Context, err error) error {
	mapped := mapAdapterError(err)
	if errors.Is(mapped, ErrTokenIsExpiredOrInvalid) {
		if delErr := k.sessions.DeleteSession(ctx); delErr != nil {
			k.logger.Err(delErr).Msg("error clearing rejected session")
		} else {
			k.logger.Info().Msg("session token rejected, local session cleared")
		}
	}
	return mapped
}

func requireSession(session models.Session) error {
	if session.IsZero() {
		return ErrNotLoggedIn
	}
	return nil
}

type clientAuthService struct {
	sessionKeeper
	adapter adapter.ServerAdapter
	now     func() time.Time
}

func NewClientAuthService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessionKeeper: sessionKeeper{sessions: sessions, logger: logger},
		adapter:       serverAdapter,
		now:           time.Now,
	}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.Session, error) {
	resp, err := a.adapter.Register(ctx, req)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}
	return a.save(ctx, resp)
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	resp, err := a.adapter.Login(ctx, req)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}
	return a.save(ctx, resp)
}

func (a *clientAuthService) save(ctx context.Context, resp models.AuthResponse) (models.Session, error) {
	session := models.Session{
		UserID:  resp.ID,
		Name:    resp.Name,
		Email:   resp.Email,
		Token:   resp.Token,
		SavedAt: a.now().UTC(),
	}
	if err := a.sessions.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("error saving session: %w", err)
	}
	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

func (a *clientAuthService) Session(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.GetSession(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrNotLoggedIn
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("error loading session: %w", err)
	}
	if session.IsZero() {
		return models.Session{}, ErrNotLoggedIn
	}
	return session, nil
}

func (a *clientAuthService) Profile(ctx context.Context, session models.Session) (models.UserProfile, error) {
	if err := requireSession(session); err != nil {
		return models.UserProfile{}, err
	}

	profile, err := a.adapter.GetProfile(ctx, session.Token)
	if err != nil {
		return models.UserProfile{}, a.fail(ctx, err)
	}
	return profile, nil
}

func (a *clientAuthService) UpdateProfile(ctx context.Context, session models.Session, name string) (models.UserProfile, error) {
	if err := requireSession(session); err != nil {
		return models.UserProfile{}, err
	}

	profile, err := a.adapter.UpdateProfile(ctx, session.Token, models.UpdateProfileRequest{Name: name})
	if err != nil {
		return models.UserProfile{}, a.fail(ctx, err)
	}

	if profile.Name != session.Name {
		session.Name = profile.Name
		session.SavedAt = a.now().UTC()
		if err = a.sessions.SaveSession(ctx, session); err != nil {
			a.logger.Err(err).Msg("error refreshing stored session")
		}
	}
	return profile, nil
}

func (a *clientAuthService) ChangePassword(ctx context.Context, session models.Session, oldPassword, newPassword string) (string, error) {
	if err := requireSession(session); err != nil {
		return "", err
	}

	msg, err := a.adapter.ChangePassword(ctx, session.Token, models.ChangePasswordRequest{
		OldPassword: oldPassword,
		NewPassword: newPassword,
	})
	if err != nil {
		return "", a.fail(ctx, err)
	}
	return msg, nil
}

func (a *clientAuthService) ForgotPassword(ctx context.Context, email string) (models.ForgotPasswordResponse, error) {
	resp, err := a.adapter.ForgotPassword(ctx, models.ForgotPasswordRequest{Email: email})
	if err != nil {
		return models.ForgotPasswordResponse{}, mapAdapterError(err)
	}
	return resp, nil
}

func (a *clientAuthService) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	msg, err := a.adapter.ResetPassword(ctx, models.ResetPasswordRequest{Token: token, NewPassword: newPassword})
	if err != nil {
		return "", mapAdapterError(err)
	}
	return msg, nil
}
