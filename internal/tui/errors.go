// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-notes/internal/app"
	"github.com/MKhiriev/go-notes/internal/service"
)

// ErrUserQuit is returned by LoginFlow when the user leaves before signing in.
var ErrUserQuit = errors.New("user quit")

const msgServerUnavailable = "Server is unreachable, check the address and try again"

// describeError turns a service error into the line shown on screen.
func describeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "Session expired, press l to log in again"
	case errors.Is(err, service.ErrInvalidCredentials):
		return app.MsgInvalidEmailOrPassword
	case errors.Is(err, service.ErrConflict):
		return app.MsgUserAlreadyExists
	case errors.Is(err, service.ErrNotFoundOrForbidden):
		return app.MsgNoteNotFound
	case errors.Is(err, service.ErrValidation):
		return strings.TrimPrefix(err.Error(), service.ErrValidation.Error()+": ")
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	return err.Error()
}
