// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Register implements [ServerAdapter]. POST /api/auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var out models.AuthResponse
	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/api/auth/register")
	if err = h.check(resp, err, "register"); err != nil {
		return models.AuthResponse{}, err
	}
	return out, nil
}

// Login implements [ServerAdapter]. POST /api/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var out models.AuthResponse
	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/api/auth/login")
	if err = h.check(resp, err, "login"); err != nil {
		return models.AuthResponse{}, err
	}
	return out, nil
}

// GetProfile implements [ServerAdapter]. GET /api/auth/profile.
func (h *httpServerAdapter) GetProfile(ctx context.Context, token string) (models.UserProfile, error) {
	var out models.UserProfile
	resp, err := h.authedRequest(ctx, token).
		SetResult(&out).
		Get("/api/auth/profile")
	if err = h.check(resp, err, "get profile"); err != nil {
		return models.UserProfile{}, err
	}
	return out, nil
}

// UpdateProfile implements [ServerAdapter]. PUT /api/auth/profile.
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, token string, req models.UpdateProfileRequest) (models.UserProfile, error) {
	var out models.UserProfile
	resp, err := h.authedRequest(ctx, token).
		SetBody(req).
		SetResult(&out).
		Put("/api/auth/profile")
	if err = h.check(resp, err, "update profile"); err != nil {
		return models.UserProfile{}, err
	}
	return out, nil
}

// ChangePassword implements [ServerAdapter]. PUT /api/auth/change-password.
func (h *httpServerAdapter) ChangePassword(ctx context.Context, token string, req models.ChangePasswordRequest) (string, error) {
	var out models.MessageResponse
	resp, err := h.authedRequest(ctx, token).
		SetBody(req).
		SetResult(&out).
		Put("/api/auth/change-password")
	if err = h.check(resp, err, "change password"); err != nil {
		return "", err
	}
	return out.Message, nil
}

// ForgotPassword implements [ServerAdapter]. POST /api/auth/forgot-password.
func (h *httpServerAdapter) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (models.ForgotPasswordResponse, error) {
	var out models.ForgotPasswordResponse
	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/api/auth/forgot-password")
	if err = h.check(resp, err, "forgot password"); err != nil {
		return models.ForgotPasswordResponse{}, err
	}
	return out, nil
}

// ResetPassword implements [ServerAdapter]. POST /api/auth/reset-password.
func (h *httpServerAdapter) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (string, error) {
	var out models.MessageResponse
	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/api/auth/reset-password")
	if err = h.check(resp, err, "reset password"); err != nil {
		return "", err
	}
	return out.Message, nil
}

// ListNotes implements [ServerAdapter]. GET /api/notes[?q=].
func (h *httpServerAdapter) ListNotes(ctx context.Context, token, query string) ([]models.Note, error) {
	out := make([]models.Note, 0)
	req := h.authedRequest(ctx, token).SetResult(&out)
	if query != "" {
		req.SetQueryParam("q", query)
	}

	resp, err := req.Get("/api/notes")
	if err = h.check(resp, err, "list notes"); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateNote implements [ServerAdapter]. POST /api/notes.
func (h *httpServerAdapter) CreateNote(ctx context.Context, token string, req models.CreateNoteRequest) (models.Note, error) {
	var out models.Note
	resp, err := h.authedRequest(ctx, token).
		SetBody(req).
		SetResult(&out).
		Post("/api/notes")
	if err = h.check(resp, err, "create note"); err != nil {
		return models.Note{}, err
	}
	return out, nil
}

// UpdateNote implements [ServerAdapter]. PUT /api/notes/{id}.
func (h *httpServerAdapter) UpdateNote(ctx context.Context, token, noteID string, update models.NoteUpdate) (models.Note, error) {
	var out models.Note
	resp, err := h.authedRequest(ctx, token).
		SetPathParam("id", noteID).
		SetBody(update).
		SetResult(&out).
		Put("/api/notes/{id}")
	if err = h.check(resp, err, "update note"); err != nil {
		return models.Note{}, err
	}
	return out, nil
}

// DeleteNote implements [ServerAdapter]. DELETE /api/notes/{id}.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, token, noteID string) (string, error) {
	var out models.MessageResponse
	resp, err := h.authedRequest(ctx, token).
		SetPathParam("id", noteID).
		SetResult(&out).
		Delete("/api/notes/{id}")
	if err = h.check(resp, err, "delete note"); err != nil {
		return "", err
	}
	return out.Message, nil
}

// Version implements [ServerAdapter]. GET /api/version (plain text).
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err = h.check(resp, err, "version"); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	req := h.request(ctx)
	if token = strings.TrimSpace(token); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// check turns a transport failure or a non-2xx response into an error.
func (h *httpServerAdapter) check(resp *resty.Response, err error, op string) error {
	if err != nil {
		h.logger.Err(err).Str("op", op).Msg("request failed")
		return fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("op", op).Int("status", resp.StatusCode()).Msg("server rejected request")
		return err
	}
	return nil
}
