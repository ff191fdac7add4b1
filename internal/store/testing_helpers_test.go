// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:                 conn,
		logger:             logger.Nop(),
		errorClassificator: NewPostgresErrorClassifier(),
		retryBase:          time.Millisecond,
	}, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func newTestNoteRepo(t *testing.T) (*noteRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &noteRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var (
	userRowColumns = []string{"id", "name", "email", "password_hash", "reset_token", "reset_token_expiry", "created_at", "updated_at"}
	noteRowColumns = []string{"id", "user_id", "title", "content", "is_pinned", "created_at", "updated_at"}
)

// nullable maps "" to a NULL column value in mocked rows.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
