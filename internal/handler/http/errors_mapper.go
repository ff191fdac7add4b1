// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes/internal/app"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/validators"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatusTable is matched top to bottom, so wrapped errors
// (ErrInvalidCredentials wraps ErrUnauthorized) must precede their parents.
var errorStatusTable = []errorStatus{
	{service.ErrValidation, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrConflict, http.StatusBadRequest, app.MsgUserAlreadyExists},
	{service.ErrInvalidOrExpired, http.StatusBadRequest, app.MsgInvalidOrExpiredToken},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidEmailOrPassword},
	{service.ErrInvalidOldPassword, http.StatusUnauthorized, app.MsgInvalidOldPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrUnauthorized, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{service.ErrNotFoundOrForbidden, http.StatusNotFound, app.MsgNoteNotFound},
	{service.ErrNotFound, http.StatusNotFound, app.MsgUserNotFound},
}

// statusFromError returns the HTTP status and the client-facing message for
// err. Unmapped errors are a 500 with the generic status text.
func statusFromError(err error) (int, string) {
	for _, e := range errorStatusTable {
		if !errors.Is(err, e.target) {
			continue
		}

		var fieldsErr *validators.FieldsError
		if e.target == service.ErrValidation && errors.As(err, &fieldsErr) {
			return e.status, fieldsErr.Error()
		}
		return e.status, e.message
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
