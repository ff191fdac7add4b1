// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes/internal/app"
	"github.com/MKhiriev/go-notes/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := userID(w, r)
	if !ok {
		return
	}

	notes, err := h.services.NoteService.List(r.Context(), userID, r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err, "list notes")
		return
	}

	writeJSON(w, r, notes, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := userID(w, r)
	if !ok {
		return
	}

	var req models.CreateNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	note, err := h.services.NoteService.Create(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err, "create note")
		return
	}

	writeJSON(w, r, note, http.StatusCreated)
}

// updateNote applies only the fields present in the body; absent fields
// keep their stored values.
func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := userID(w, r)
	if !ok {
		return
	}

	var update models.NoteUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	note, err := h.services.NoteService.Update(r.Context(), userID, chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, err, "update note")
		return
	}

	writeJSON(w, r, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := userID(w, r)
	if !ok {
		return
	}

	if err := h.services.NoteService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "delete note")
		return
	}

	writeJSON(w, r, models.MessageResponse{Message: app.MsgNoteRemoved}, http.StatusOK)
}
