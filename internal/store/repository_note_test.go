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

const testNoteID = "0190a0d4-7a3e-7c00-8000-0000000000aa"

// ── ListNotes ───────────────────────────────────────────────────────────────

func TestListNotes_Success(t *testing.T) {
	repo, mock := newTestNoteRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM notes WHERE user_id = \\$1 ORDER BY is_pinned DESC").
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows(noteRowColumns).
			AddRow("n1", testUserID, "pinned", "a", true, now, now).
			AddRow("n2", testUserID, "plain", "b", false, now, now))

	notes, err := repo.ListNotes(context.Background(), testUserID)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "n1", notes[0].ID)
	assert.True(t, notes[0].IsPinned)
	assert.Equal(t, testUserID, notes[1].OwnerID)
}

func TestListNotes_EmptyIsNotNil(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM notes").
		WillReturnRows(sqlmock.NewRows(noteRowColumns))

	notes, err := repo.ListNotes(context.Background(), testUserID)
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestListNotes_RetriesConnectionFailure(t *testing.T) {
	repo, mock := newTestNoteRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM notes").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))
	mock.ExpectQuery("SELECT (.+) FROM notes").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))
	mock.ExpectQuery("SELECT (.+) FROM notes").
		WillReturnRows(sqlmock.NewRows(noteRowColumns).AddRow("n1", testUserID, "t", "c", false, now, now))

	notes, err := repo.ListNotes(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Len(t, notes, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListNotes_GivesUpAfterMaxRetries(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	for range maxRetries + 1 {
		mock.ExpectQuery("SELECT (.+) FROM notes").
			WillReturnError(pgError(pgerrcode.ConnectionFailure))
	}

	_, err := repo.ListNotes(context.Background(), testUserID)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListNotes_ScanError(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM notes").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("n1"))

	_, err := repo.ListNotes(context.Background(), testUserID)
	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── CreateNote ──────────────────────────────────────────────────────────────

func TestCreateNote_Success(t *testing.T) {
	repo, mock := newTestNoteRepo(t)
	now := time.Now().UTC()
	note := models.Note{ID: testNoteID, OwnerID: testUserID, Title: "Title", Content: "Body"}

	mock.ExpectQuery("INSERT INTO notes").
		WithArgs(note.ID, note.OwnerID, note.Title, note.Content, false).
		WillReturnRows(sqlmock.NewRows(noteRowColumns).
			AddRow(note.ID, note.OwnerID, note.Title, note.Content, false, now, now))

	created, err := repo.CreateNote(context.Background(), note)
	require.NoError(t, err)
	assert.Equal(t, now, created.CreatedAt)
	assert.Equal(t, now, created.UpdatedAt)
}

func TestCreateNote_MissingOwner(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery("INSERT INTO notes").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateNote(context.Background(), models.Note{ID: testNoteID, OwnerID: testUserID, Title: "t"})
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestCreateNote_UnexpectedError(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery("INSERT INTO notes").
		WillReturnError(errors.New("boom"))

	_, err := repo.CreateNote(context.Background(), models.Note{Title: "t"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
}

// ── UpdateNote ──────────────────────────────────────────────────────────────

func TestUpdateNote_Success(t *testing.T) {
	repo, mock := newTestNoteRepo(t)
	now := time.Now().UTC()
	pinned := true

	mock.ExpectQuery("UPDATE notes SET is_pinned = \\$1, updated_at = NOW\\(\\)").
		WithArgs(true, testNoteID, testUserID).
		WillReturnRows(sqlmock.NewRows(noteRowColumns).
			AddRow(testNoteID, testUserID, "t", "c", true, now.Add(-time.Hour), now))

	note, err := repo.UpdateNote(context.Background(), testUserID, testNoteID, models.NoteUpdate{IsPinned: &pinned})
	require.NoError(t, err)
	assert.True(t, note.IsPinned)
	assert.True(t, note.UpdatedAt.After(note.CreatedAt))
}

func TestUpdateNote_NotFound(t *testing.T) {
	tests := []struct {
		name string
		mock func(m sqlmock.Sqlmock)
	}{
		{
			name: "no row for owner",
			mock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("UPDATE notes").WillReturnRows(sqlmock.NewRows(noteRowColumns))
			},
		},
		{
			name: "malformed id",
			mock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("UPDATE notes").WillReturnError(pgError(pgerrcode.InvalidTextRepresentation))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestNoteRepo(t)
			tt.mock(mock)

			_, err := repo.UpdateNote(context.Background(), testUserID, testNoteID, models.NoteUpdate{})
			assert.ErrorIs(t, err, ErrNoteNotFound)
		})
	}
}

// ── DeleteNote ──────────────────────────────────────────────────────────────

func TestDeleteNote(t *testing.T) {
	t.Run("deletes owned note", func(t *testing.T) {
		repo, mock := newTestNoteRepo(t)
		mock.ExpectExec("DELETE FROM notes WHERE \\(id = \\$1 AND user_id = \\$2\\)").
			WithArgs(testNoteID, testUserID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteNote(context.Background(), testUserID, testNoteID))
	})

	t.Run("foreign or missing note", func(t *testing.T) {
		repo, mock := newTestNoteRepo(t)
		mock.ExpectExec("DELETE FROM notes").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeleteNote(context.Background(), testUserID, testNoteID), ErrNoteNotFound)
	})

	t.Run("exec error", func(t *testing.T) {
		repo, mock := newTestNoteRepo(t)
		mock.ExpectExec("DELETE FROM notes").
			WillReturnError(errors.New("boom"))

		assert.ErrorIs(t, repo.DeleteNote(context.Background(), testUserID, testNoteID), ErrExecutingStatement)
	})
}
