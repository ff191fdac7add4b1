// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes/internal/app"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "register")
		return
	}

	logger.FromRequest(r).Info().Str("user_id", result.User.UserID).Msg("user registered")
	writeJSON(w, r, result.Response(), http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "login")
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", result.User.UserID).Msg("user logged in")
	writeJSON(w, r, result.Response(), http.StatusOK)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userID(w, r)
	if !ok {
		return
	}

	user, err := h.services.AuthService.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "get profile")
		return
	}

	writeJSON(w, r, user.Profile(), http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userID(w, r)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.services.AuthService.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err, "update profile")
		return
	}

	writeJSON(w, r, user.Profile(), http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := userID(w, r)
	if !ok {
		return
	}

	var req models.ChangePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.services.AuthService.ChangePassword(r.Context(), userID, req); err != nil {
		writeError(w, r, err, "change password")
		return
	}

	writeJSON(w, r, models.MessageResponse{Message: app.MsgPasswordUpdated}, http.StatusOK)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ticket, err := h.services.AuthService.RequestPasswordReset(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "forgot password")
		return
	}

	writeJSON(w, r, models.ForgotPasswordResponse{
		Message:    app.MsgResetTokenGenerated,
		ResetToken: ticket.ResetToken,
	}, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.services.AuthService.ResetPassword(r.Context(), req); err != nil {
		writeError(w, r, err, "reset password")
		return
	}

	writeJSON(w, r, models.MessageResponse{Message: app.MsgPasswordReset}, http.StatusOK)
}
