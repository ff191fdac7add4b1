// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
)

// noteService is the [NoteService] backed by a [store.NoteRepository].
// Every operation is scoped to the calling user's id.
type noteService struct {
	noteRepository store.NoteRepository
	validator      validators.Validator
	ids            *utils.UUIDGenerator

	logger *logger.Logger
}

// NewNoteService constructs a [NoteService] that stores notes in
// noteRepository and validates input with validator.
func NewNoteService(noteRepository store.NoteRepository, validator validators.Validator, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		validator:      validator,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// List loads the owner's notes and orders them in memory, so the result
// does not depend on the store's ordering.
func (s *noteService) List(ctx context.Context, userID, query string) ([]models.Note, error) {
	notes, err := s.noteRepository.ListNotes(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("error listing notes")
		return nil, fmt.Errorf("error listing notes: %w", err)
	}

	models.SortNotes(notes)
	return models.FilterNotes(notes, query), nil
}

// Create validates req and stores a new unpinned note owned by userID.
// Invalid input returns ErrValidation and nothing is persisted.
func (s *noteService) Create(ctx context.Context, userID string, req models.CreateNoteRequest) (models.Note, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Note{}, validationError(err)
	}

	note, err := s.noteRepository.CreateNote(ctx, models.Note{
		ID:      s.ids.Generate(),
		OwnerID: userID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("error creating note")
		return models.Note{}, fmt.Errorf("error creating note: %w", err)
	}

	return note, nil
}

// Update applies the present fields of update. The ownership check is part
// of the store statement; a missing, foreign or malformed id all yield
// ErrNotFoundOrForbidden.
func (s *noteService) Update(ctx context.Context, userID, noteID string, update models.NoteUpdate) (models.Note, error) {
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Note{}, validationError(err)
	}
	if !utils.IsValidUUID(noteID) {
		return models.Note{}, ErrNotFoundOrForbidden
	}

	note, err := s.noteRepository.UpdateNote(ctx, userID, noteID, update)
	if errors.Is(err, store.ErrNoteNotFound) {
		return models.Note{}, ErrNotFoundOrForbidden
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("note_id", noteID).Msg("error updating note")
		return models.Note{}, fmt.Errorf("error updating note: %w", err)
	}

	return note, nil
}

// Delete removes the note. A missing, foreign or malformed id yields
// ErrNotFoundOrForbidden.
func (s *noteService) Delete(ctx context.Context, userID, noteID string) error {
	if !utils.IsValidUUID(noteID) {
		return ErrNotFoundOrForbidden
	}

	err := s.noteRepository.DeleteNote(ctx, userID, noteID)
	if errors.Is(err, store.ErrNoteNotFound) {
		return ErrNotFoundOrForbidden
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("note_id", noteID).Msg("error deleting note")
		return fmt.Errorf("error deleting note: %w", err)
	}

	return nil
}
