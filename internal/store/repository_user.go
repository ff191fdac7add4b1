// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and credential updates against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user        models.User
		resetToken  sql.NullString
		resetExpiry sql.NullTime
	)

	err := row.Scan(&user.UserID, &user.Name, &user.Email, &user.PasswordHash,
		&resetToken, &resetExpiry, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return models.User{}, err
	}

	if resetToken.Valid {
		user.ResetTokenDigest = &resetToken.String
	}
	if resetExpiry.Valid {
		user.ResetTokenExpiry = &resetExpiry.Time
	}

	return user, nil
}

// CreateUser persists a new user record and returns the stored
// representation including server-assigned timestamps.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.UserID, user.Name, user.Email, user.PasswordHash)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved user from db
	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, errors.Join(ErrScanningRow, err)
	}

	return created, nil
}

// FindUserByEmail retrieves the user with the given (normalized) email.
// Transient errors are retried.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

// FindUserByID retrieves the user with the given id.
// Transient errors are retried.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		var err error
		found, err = scanUser(r.db.QueryRowContext(ctx, query, arg))
		return err
	})

	switch {
	case err == nil:
		return found, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	default:
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}
}

// UpdateUserName sets the display name and returns the updated record.
func (r *userRepository) UpdateUserName(ctx context.Context, userID, name string) (models.User, error) {
	log := logger.FromContext(ctx)

	updated, err := scanUser(r.db.QueryRowContext(ctx, updateUserName, userID, name))
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	default:
		log.Err(err).Str("func", "*userRepository.UpdateUserName").Msg("error updating user name")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}
}

// UpdatePassword replaces the stored password hash.
func (r *userRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	return r.execAffectingUser(ctx, "*userRepository.UpdatePassword", updateUserPassword, userID, passwordHash)
}

// SetResetToken stores the reset token digest and its expiry, overwriting
// any pending token.
func (r *userRepository) SetResetToken(ctx context.Context, userID, digest string, expiry time.Time) error {
	return r.execAffectingUser(ctx, "*userRepository.SetResetToken", setResetToken, userID, digest, expiry)
}

func (r *userRepository) execAffectingUser(ctx context.Context, funcName, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return errors.Join(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return errors.Join(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// ResetPassword consumes the reset token with the given digest. The digest
// match, expiry check, password replacement and token clearing happen in a
// single UPDATE, so concurrent resets with the same token succeed at most
// once.
func (r *userRepository) ResetPassword(ctx context.Context, digest, passwordHash string, now time.Time) (string, error) {
	log := logger.FromContext(ctx)

	var userID string
	err := r.db.QueryRowContext(ctx, resetPassword, digest, passwordHash, now).Scan(&userID)
	switch {
	case err == nil:
		return userID, nil
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrResetTokenNotFound
	default:
		log.Err(err).Str("func", "*userRepository.ResetPassword").Msg("error resetting password")
		return "", fmt.Errorf("unexpected DB error: %w", err)
	}
}

// ClearResetToken drops the token with the given digest. Clearing a digest
// nobody holds is not an error.
func (r *userRepository) ClearResetToken(ctx context.Context, digest string) error {
	if _, err := r.db.ExecContext(ctx, clearResetToken, digest); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.ClearResetToken").Msg("error clearing reset token")
		return errors.Join(ErrExecutingStatement, err)
	}
	return nil
}

// PurgeExpiredResetTokens clears the reset token of every user whose token
// expired at or before now and returns the number of users touched.
func (r *userRepository) PurgeExpiredResetTokens(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, purgeExpiredResetTokens, now)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.PurgeExpiredResetTokens").Msg("error purging reset tokens")
		return 0, errors.Join(ErrExecutingStatement, err)
	}

	purged, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Join(ErrExecutingStatement, err)
	}
	return purged, nil
}
