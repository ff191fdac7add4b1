// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListNotesQuery(t *testing.T) {
	query, args, err := buildListNotesQuery("user-1")
	require.NoError(t, err)

	assert.Equal(t, []any{"user-1"}, args)
	assert.Equal(t,
		"SELECT id, user_id, title, content, is_pinned, created_at, updated_at FROM notes "+
			"WHERE user_id = $1 ORDER BY is_pinned DESC, updated_at DESC, created_at DESC",
		query)
}

func Test_buildCreateNoteQuery(t *testing.T) {
	note := models.Note{ID: "note-1", OwnerID: "user-1", Title: "t", Content: "c"}

	query, args, err := buildCreateNoteQuery(note)
	require.NoError(t, err)

	assert.Equal(t, []any{"note-1", "user-1", "t", "c", false}, args)
	assert.True(t, strings.HasPrefix(query, "INSERT INTO notes (id,user_id,title,content,is_pinned) VALUES ($1,$2,$3,$4,$5)"))
	assert.True(t, strings.HasSuffix(query, "RETURNING id, user_id, title, content, is_pinned, created_at, updated_at"))
}

func Test_buildUpdateNoteQuery(t *testing.T) {
	title := "new title"
	pinned := true

	tests := []struct {
		name      string
		update    models.NoteUpdate
		wantSet   string
		wantArgs  []any
		notInSets []string
	}{
		{
			name:      "title only",
			update:    models.NoteUpdate{Title: &title},
			wantSet:   "SET title = $1, updated_at = NOW() WHERE (id = $2 AND user_id = $3)",
			wantArgs:  []any{"new title", "note-1", "user-1"},
			notInSets: []string{"content", "is_pinned ="},
		},
		{
			name:     "title and pin",
			update:   models.NoteUpdate{Title: &title, IsPinned: &pinned},
			wantSet:  "SET title = $1, is_pinned = $2, updated_at = NOW() WHERE (id = $3 AND user_id = $4)",
			wantArgs: []any{"new title", true, "note-1", "user-1"},
		},
		{
			name:     "empty update touches updated_at",
			update:   models.NoteUpdate{},
			wantSet:  "SET updated_at = NOW() WHERE (id = $1 AND user_id = $2)",
			wantArgs: []any{"note-1", "user-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateNoteQuery("user-1", "note-1", tt.update)
			require.NoError(t, err)

			assert.Contains(t, query, "UPDATE notes "+tt.wantSet)
			assert.Equal(t, tt.wantArgs, args)
			for _, s := range tt.notInSets {
				assert.NotContains(t, strings.SplitN(query, "WHERE", 2)[0], s)
			}
		})
	}
}

func Test_buildDeleteNoteQuery(t *testing.T) {
	query, args, err := buildDeleteNoteQuery("user-1", "note-1")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM notes WHERE (id = $1 AND user_id = $2)", query)
	assert.Equal(t, []any{"note-1", "user-1"}, args)
}
