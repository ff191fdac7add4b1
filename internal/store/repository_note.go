// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
	"github.com/jackc/pgerrcode"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

func scanNote(row rowScanner) (models.Note, error) {
	var note models.Note
	err := row.Scan(&note.ID, &note.OwnerID, &note.Title, &note.Content, &note.IsPinned, &note.CreatedAt, &note.UpdatedAt)
	return note, err
}

// ListNotes returns every note owned by userID, pinned first and most
// recently updated first. Transient errors are retried.
func (n *noteRepository) ListNotes(ctx context.Context, userID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error building query")
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	var notes []models.Note
	err = n.db.withRetry(ctx, func(ctx context.Context) error {
		notes, err = n.queryNotes(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error listing notes")
		return nil, err
	}

	return notes, nil
}

func (n *noteRepository) queryNotes(ctx context.Context, query string, args ...any) ([]models.Note, error) {
	rows, err := n.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, errors.Join(ErrScanningRows, err)
		}
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return notes, nil
}

// CreateNote inserts note and returns it with store-assigned timestamps.
// A missing owner (foreign_key_violation) is reported as [ErrNoUserWasFound].
func (n *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateNoteQuery(note)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error building query")
		return models.Note{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	row := n.db.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error inserting note")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Note{}, ErrNoUserWasFound
		default:
			return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	created, err := scanNote(row)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error: scanning error")
		return models.Note{}, errors.Join(ErrScanningRow, err)
	}

	return created, nil
}

// UpdateNote applies update to the note identified by noteID and owned by
// userID, refreshing updated_at, and returns the stored result.
func (n *noteRepository) UpdateNote(ctx context.Context, userID, noteID string, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(userID, noteID, update)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error building query")
		return models.Note{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	updated, err := scanNote(n.db.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, sql.ErrNoRows), postgresError(err) == pgerrcode.InvalidTextRepresentation:
		return models.Note{}, ErrNoteNotFound
	default:
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error updating note")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}
}

// DeleteNote removes the note identified by noteID and owned by userID.
func (n *noteRepository) DeleteNote(ctx context.Context, userID, noteID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(userID, noteID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error building query")
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	result, err := n.db.ExecContext(ctx, query, args...)
	if err != nil {
		if postgresError(err) == pgerrcode.InvalidTextRepresentation {
			return ErrNoteNotFound
		}
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error deleting note")
		return errors.Join(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Join(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}
