// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes/internal/adapter"
	"github.com/MKhiriev/go-notes/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgUserAlreadyExists:
			return ErrConflict
		case app.MsgInvalidOrExpiredToken:
			return ErrInvalidOrExpired
		default:
			return fmt.Errorf("%w: %s", ErrValidation, msg)
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidEmailOrPassword:
			return ErrInvalidCredentials
		case app.MsgInvalidOldPassword:
			return ErrInvalidOldPassword
		default:
			return ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgNoteNotFound {
			return ErrNotFoundOrForbidden
		}
		return ErrNotFound

	case errors.Is(err, adapter.ErrConflict):
		return ErrConflict
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
