// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	"github.com/MKhiriev/go-notes/models"
	sq "github.com/Masterminds/squirrel"
)

const userColumns = `id, name, email, password_hash, reset_token, reset_token_expiry, created_at, updated_at`

const (
	createUser = `INSERT INTO users (id, name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
		FROM users
		WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
		FROM users
		WHERE id = $1;`

	updateUserName = `UPDATE users
		SET name = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns + `;`

	updateUserPassword = `UPDATE users
		SET password_hash = $2, updated_at = NOW()
		WHERE id = $1;`

	setResetToken = `UPDATE users
		SET reset_token = $2, reset_token_expiry = $3
		WHERE id = $1;`

	resetPassword = `UPDATE users
		SET password_hash = $2, reset_token = NULL, reset_token_expiry = NULL, updated_at = NOW()
		WHERE reset_token = $1 AND reset_token_expiry > $3
		RETURNING id;`

	clearResetToken = `UPDATE users
		SET reset_token = NULL, reset_token_expiry = NULL
		WHERE reset_token = $1;`

	purgeExpiredResetTokens = `UPDATE users
		SET reset_token = NULL, reset_token_expiry = NULL
		WHERE reset_token IS NOT NULL AND reset_token_expiry <= $1;`
)

// noteColumns is the column list every note query returns, in scan order.
var noteColumns = []string{"id", "user_id", "title", "content", "is_pinned", "created_at", "updated_at"}

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func returningNoteColumns() string {
	return "RETURNING " + strings.Join(noteColumns, ", ")
}

func buildListNotesQuery(userID string) (string, []any, error) {
	return psql.Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("is_pinned DESC", "updated_at DESC", "created_at DESC").
		ToSql()
}

func buildCreateNoteQuery(note models.Note) (string, []any, error) {
	return psql.Insert(note.TableName()).
		Columns("id", "user_id", "title", "content", "is_pinned").
		Values(note.ID, note.OwnerID, note.Title, note.Content, note.IsPinned).
		Suffix(returningNoteColumns()).
		ToSql()
}

// buildUpdateNoteQuery sets only the fields present in update. updated_at is
// always refreshed, so an empty update still touches the note.
func buildUpdateNoteQuery(userID, noteID string, update models.NoteUpdate) (string, []any, error) {
	q := psql.Update(models.Note{}.TableName())

	if update.Title != nil {
		q = q.Set("title", *update.Title)
	}
	if update.Content != nil {
		q = q.Set("content", *update.Content)
	}
	if update.IsPinned != nil {
		q = q.Set("is_pinned", *update.IsPinned)
	}

	return q.Set("updated_at", sq.Expr("NOW()")).
		Where(sq.And{sq.Eq{"id": noteID}, sq.Eq{"user_id": userID}}).
		Suffix(returningNoteColumns()).
		ToSql()
}

func buildDeleteNoteQuery(userID, noteID string) (string, []any, error) {
	return psql.Delete(models.Note{}.TableName()).
		Where(sq.And{sq.Eq{"id": noteID}, sq.Eq{"user_id": userID}}).
		ToSql()
}
