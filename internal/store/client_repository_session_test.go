// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionRepo(t *testing.T) (*sessionRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &sessionRepository{db: db, logger: logger.Nop()}, mock
}

func TestSessionRepository_SaveSession(t *testing.T) {
	repo, mock := newTestSessionRepo(t)
	saved := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	session := models.Session{UserID: testUserID, Name: "Ann", Email: "ann@example.com", Token: "jwt", SavedAt: saved}

	mock.ExpectExec("INSERT INTO sessions (.+) ON CONFLICT \\(id\\) DO UPDATE").
		WithArgs(testUserID, "Ann", "ann@example.com", "jwt", saved).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveSession(context.Background(), session))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_SaveSession_Error(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec("INSERT INTO sessions").WillReturnError(errors.New("disk full"))

	err := repo.SaveSession(context.Background(), models.Session{Token: "jwt"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSessionRepository_GetSession(t *testing.T) {
	t.Run("stored", func(t *testing.T) {
		repo, mock := newTestSessionRepo(t)
		saved := time.Now().UTC()

		mock.ExpectQuery("SELECT (.+) FROM sessions WHERE id = 1").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "email", "token", "saved_at"}).
				AddRow(testUserID, "Ann", "ann@example.com", "jwt", saved))

		session, err := repo.GetSession(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "jwt", session.Token)
		assert.Equal(t, saved, session.SavedAt)
	})

	t.Run("none stored", func(t *testing.T) {
		repo, mock := newTestSessionRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM sessions").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "email", "token", "saved_at"}))

		_, err := repo.GetSession(context.Background())
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestSessionRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM sessions").WillReturnError(errors.New("locked"))

		_, err := repo.GetSession(context.Background())
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestSessionRepository_DeleteSession(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec("DELETE FROM sessions").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteSession(context.Background()))
}
