// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func noteIDs(notes []Note) []string {
	ids := make([]string, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.ID)
	}
	return ids
}

// TestSortNotes_PinnedFirstThenRecency checks the listing order:
// A(pinned, older), B(unpinned, newer), C(pinned, newest) → C, A, B.
func TestSortNotes_PinnedFirstThenRecency(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	notes := []Note{
		{ID: "A", IsPinned: true, UpdatedAt: base},
		{ID: "B", IsPinned: false, UpdatedAt: base.Add(time.Hour)},
		{ID: "C", IsPinned: true, UpdatedAt: base.Add(2 * time.Hour)},
	}

	SortNotes(notes)

	assert.Equal(t, []string{"C", "A", "B"}, noteIDs(notes))
}

func TestSortNotes_TieBreakers(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	notes := []Note{
		{ID: "b", UpdatedAt: base, CreatedAt: base},
		{ID: "a", UpdatedAt: base, CreatedAt: base},
		{ID: "c", UpdatedAt: base, CreatedAt: base.Add(time.Minute)},
	}

	SortNotes(notes)

	assert.Equal(t, []string{"c", "a", "b"}, noteIDs(notes))
}

func TestSortNotes_Empty(t *testing.T) {
	var notes []Note
	SortNotes(notes)
	assert.Empty(t, notes)
}

func TestNote_Matches(t *testing.T) {
	n := Note{Title: "Groceries", Content: "Buy MILK and eggs"}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"empty query", "", true},
		{"title case-insensitive", "grocer", true},
		{"content case-insensitive", "milk", true},
		{"no match", "bread", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Matches(tt.query))
		})
	}
}

func TestFilterNotes_PreservesOrder(t *testing.T) {
	notes := []Note{
		{ID: "1", Title: "Work plan"},
		{ID: "2", Title: "Holiday"},
		{ID: "3", Content: "work log"},
	}

	got := FilterNotes(notes, "WORK")

	assert.Equal(t, []string{"1", "3"}, noteIDs(got))
	assert.Len(t, FilterNotes(notes, ""), 3)
}

func TestNoteUpdate_IsEmpty(t *testing.T) {
	pinned := true
	assert.True(t, NoteUpdate{}.IsEmpty())
	assert.False(t, NoteUpdate{IsPinned: &pinned}.IsEmpty())
}
