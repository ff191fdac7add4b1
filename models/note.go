// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// Note is a single user note. Every note has exactly one owner.
type Note struct {
	// ID is the generated unique identifier of the note (UUIDv7).
	ID string `json:"id"`

	// OwnerID references the User that owns the note. Immutable.
	OwnerID string `json:"ownerId"`

	// Title is the non-empty note title.
	Title string `json:"title"`

	// Content is the note body.
	Content string `json:"content"`

	// IsPinned moves the note ahead of unpinned notes in listings.
	IsPinned bool `json:"isPinned"`

	// CreatedAt and UpdatedAt are set by the store on every write.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// Matches reports whether query occurs in the note title or content,
// ignoring case. An empty query matches every note.
func (n Note) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Content), q)
}

// NoteUpdate is a partial update of a note. Nil fields are left unchanged.
type NoteUpdate struct {
	Title    *string `json:"title,omitempty" validate:"omitnil,min=1"`
	Content  *string `json:"content,omitempty" validate:"omitnil,min=1"`
	IsPinned *bool   `json:"isPinned,omitempty"`
}

// IsEmpty reports whether the update carries no fields.
func (u NoteUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.IsPinned == nil
}

// SortNotes orders notes pinned first, then by UpdatedAt descending.
// Ties are broken by CreatedAt descending and finally by ID so the result
// is deterministic.
func SortNotes(notes []Note) {
	slices.SortStableFunc(notes, func(a, b Note) int {
		if a.IsPinned != b.IsPinned {
			if a.IsPinned {
				return -1
			}
			return 1
		}
		if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
			return c
		}
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// FilterNotes returns the notes matching query, preserving order.
func FilterNotes(notes []Note, query string) []Note {
	if query == "" {
		return notes
	}
	filtered := make([]Note, 0, len(notes))
	for _, n := range notes {
		if n.Matches(query) {
			filtered = append(filtered, n)
		}
	}
	return filtered
}
