// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-notes/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository keeps the single signed-in session of the local client.
type SessionRepository interface {
	// SaveSession stores session, replacing any previous one.
	SaveSession(ctx context.Context, session models.Session) error

	// GetSession returns the stored session or [ErrSessionNotFound].
	GetSession(ctx context.Context) (models.Session, error)

	// DeleteSession removes the stored session. Deleting when none is
	// stored is not an error.
	DeleteSession(ctx context.Context) error
}
