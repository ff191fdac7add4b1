// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-notes/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "0190a0d4-7a3e-7c00-8000-000000000001"

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now().UTC()

	user := models.User{UserID: testUserID, Name: "Ann", Email: "ann@example.com", PasswordHash: "hash"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.UserID, user.Name, user.Email, user.PasswordHash).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(user.UserID, user.Name, user.Email, user.PasswordHash, nil, nil, now, now))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, testUserID, created.UserID)
	assert.Equal(t, "ann@example.com", created.Email)
	assert.Nil(t, created.ResetTokenDigest)
	assert.Equal(t, now, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "ann@example.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testUserID))

	_, err := repo.CreateUser(context.Background(), models.User{})
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestFindUserByEmail_WithPendingReset(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now().UTC()
	expiry := now.Add(time.Hour)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
		WithArgs("ann@example.com").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(testUserID, "Ann", "ann@example.com", "hash", nullable("digest"), expiry, now, now))

	user, err := repo.FindUserByEmail(context.Background(), "ann@example.com")
	require.NoError(t, err)
	require.True(t, user.HasPendingReset())
	assert.Equal(t, "digest", *user.ResetTokenDigest)
	assert.Equal(t, expiry, *user.ResetTokenExpiry)
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindUserByID(context.Background(), testUserID)
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUserByID_RetriesTransientError(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(testUserID, "Ann", "ann@example.com", "hash", nil, nil, now, now))

	user, err := repo.FindUserByID(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", user.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByID_DoesNotRetryPermanentError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.FindUserByID(context.Background(), testUserID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUserName(t *testing.T) {
	now := time.Now().UTC()

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("UPDATE users").
			WithArgs(testUserID, "Annie").
			WillReturnRows(sqlmock.NewRows(userRowColumns).
				AddRow(testUserID, "Annie", "ann@example.com", "hash", nil, nil, now, now))

		user, err := repo.UpdateUserName(context.Background(), testUserID, "Annie")
		require.NoError(t, err)
		assert.Equal(t, "Annie", user.Name)
	})

	t.Run("missing user", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("UPDATE users").
			WillReturnRows(sqlmock.NewRows(userRowColumns))

		_, err := repo.UpdateUserName(context.Background(), testUserID, "Annie")
		assert.ErrorIs(t, err, ErrNoUserWasFound)
	})
}

func TestUpdatePassword(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("UPDATE users SET password_hash").
			WithArgs(testUserID, "new-hash").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdatePassword(context.Background(), testUserID, "new-hash"))
	})

	t.Run("no rows affected", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("UPDATE users SET password_hash").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdatePassword(context.Background(), testUserID, "x"), ErrNoUserWasFound)
	})

	t.Run("exec error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("UPDATE users SET password_hash").
			WillReturnError(errors.New("boom"))

		assert.ErrorIs(t, repo.UpdatePassword(context.Background(), testUserID, "x"), ErrExecutingStatement)
	})
}

func TestSetResetToken(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	expiry := time.Now().Add(time.Hour)

	mock.ExpectExec("UPDATE users SET reset_token").
		WithArgs(testUserID, "digest", expiry).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetResetToken(context.Background(), testUserID, "digest", expiry))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResetPassword(t *testing.T) {
	now := time.Now()

	t.Run("consumes valid token", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("UPDATE users SET password_hash (.+) WHERE reset_token = \\$1 AND reset_token_expiry > \\$3").
			WithArgs("digest", "new-hash", now).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testUserID))

		userID, err := repo.ResetPassword(context.Background(), "digest", "new-hash", now)
		require.NoError(t, err)
		assert.Equal(t, testUserID, userID)
	})

	t.Run("unknown or expired token", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("UPDATE users").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.ResetPassword(context.Background(), "digest", "new-hash", now)
		assert.ErrorIs(t, err, ErrResetTokenNotFound)
	})
}

func TestClearResetToken(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE users SET reset_token = NULL").
		WithArgs("digest").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.ClearResetToken(context.Background(), "digest"))
}

func TestPurgeExpiredResetTokens(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec("reset_token_expiry <= \\$1").
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	purged, err := repo.PurgeExpiredResetTokens(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), purged)
}

func TestPurgeExpiredResetTokens_Error(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("reset_token_expiry").WillReturnError(errors.New("connection reset"))

	_, err := repo.PurgeExpiredResetTokens(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
