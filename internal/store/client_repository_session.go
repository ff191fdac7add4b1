// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

const (
	saveSession = `INSERT INTO sessions (id, user_id, name, email, token, saved_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			user_id = excluded.user_id,
			name = excluded.name,
			email = excluded.email,
			token = excluded.token,
			saved_at = excluded.saved_at;`

	getSession = `SELECT user_id, name, email, token, saved_at
		FROM sessions
		WHERE id = 1;`

	deleteSession = `DELETE FROM sessions;`
)

type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRepository constructs the SQLite-backed [SessionRepository].
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{db: db, logger: logger}
}

func (s *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	_, err := s.db.ExecContext(ctx, saveSession, session.UserID, session.Name, session.Email, session.Token, session.SavedAt.UTC())
	if err != nil {
		s.logger.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("error saving session")
		return errors.Join(ErrExecutingStatement, err)
	}
	return nil
}

func (s *sessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	var session models.Session
	err := s.db.QueryRowContext(ctx, getSession).
		Scan(&session.UserID, &session.Name, &session.Email, &session.Token, &session.SavedAt)
	switch {
	case err == nil:
		return session, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Session{}, ErrSessionNotFound
	default:
		s.logger.Err(err).Str("func", "*sessionRepository.GetSession").Msg("error reading session")
		return models.Session{}, errors.Join(ErrExecutingQuery, err)
	}
}

func (s *sessionRepository) DeleteSession(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, deleteSession); err != nil {
		s.logger.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error deleting session")
		return errors.Join(ErrExecutingStatement, err)
	}
	return nil
}
