// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-notes/internal/app"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/utils"
)

// decodeJSON decodes the request body into dst and answers 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		writeMessage(w, r, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func writeMessage(w http.ResponseWriter, r *http.Request, message string, status int) {
	if _, err := utils.WriteMessage(w, message, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// writeError maps err through statusFromError. Server-side failures are
// logged with their detail, which never reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, err error, op string) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("op", op).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("op", op).Int("status", status).Msg("request rejected")
	}

	writeMessage(w, r, message, status)
}

// userID returns the id stored by the auth middleware. Its absence is a
// routing bug and answers 500.
func userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserIDInContext, "user id from context")
		return "", false
	}
	return id, true
}
