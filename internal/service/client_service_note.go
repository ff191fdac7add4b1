// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-notes/internal/adapter"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/models"
)

type clientNoteService struct {
	sessionKeeper
	adapter adapter.ServerAdapter
}

func NewClientNoteService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientNoteService {
	return &clientNoteService{
		sessionKeeper: sessionKeeper{sessions: sessions, logger: logger},
		adapter:       serverAdapter,
	}
}

func (s *clientNoteService) List(ctx context.Context, session models.Session, query string) ([]models.Note, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	notes, err := s.adapter.ListNotes(ctx, session.Token, query)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return notes, nil
}

func (s *clientNoteService) Create(ctx context.Context, session models.Session, title, content string) (models.Note, error) {
	if err := requireSession(session); err != nil {
		return models.Note{}, err
	}

	note, err := s.adapter.CreateNote(ctx, session.Token, models.CreateNoteRequest{Title: title, Content: content})
	if err != nil {
		return models.Note{}, s.fail(ctx, err)
	}
	return note, nil
}

func (s *clientNoteService) Update(ctx context.Context, session models.Session, noteID string, update models.NoteUpdate) (models.Note, error) {
	if err := requireSession(session); err != nil {
		return models.Note{}, err
	}

	note, err := s.adapter.UpdateNote(ctx, session.Token, noteID, update)
	if err != nil {
		return models.Note{}, s.fail(ctx, err)
	}
	return note, nil
}

func (s *clientNoteService) SetPinned(ctx context.Context, session models.Session, noteID string, pinned bool) (models.Note, error) {
	return s.Update(ctx, session, noteID, models.NoteUpdate{IsPinned: &pinned})
}

func (s *clientNoteService) Delete(ctx context.Context, session models.Session, noteID string) (string, error) {
	if err := requireSession(session); err != nil {
		return "", err
	}

	msg, err := s.adapter.DeleteNote(ctx, session.Token, noteID)
	if err != nil {
		return "", s.fail(ctx, err)
	}
	return msg, nil
}
