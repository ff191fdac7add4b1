// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"

	"github.com/MKhiriev/go-notes/internal/app"
	"github.com/MKhiriev/go-notes/internal/service"
)

var (
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingFlag    = errors.New("missing required flag")
)

var friendlyMessages = []struct {
	target  error
	message string
}{
	{service.ErrNotLoggedIn, app.MsgNotLoggedIn},
	{service.ErrTokenIsExpiredOrInvalid, "session expired: run `notes login` again"},
	{service.ErrInvalidCredentials, app.MsgInvalidEmailOrPassword},
	{service.ErrInvalidOldPassword, app.MsgInvalidOldPassword},
	{service.ErrConflict, app.MsgUserAlreadyExists},
	{service.ErrInvalidOrExpired, app.MsgInvalidOrExpiredToken},
	{service.ErrNotFoundOrForbidden, app.MsgNoteNotFound},
	{service.ErrNotFound, app.MsgUserNotFound},
}

// Describe turns a command error into the line printed for the user.
func Describe(err error) string {
	for _, m := range friendlyMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return err.Error()
}
