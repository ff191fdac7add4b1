// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-notes/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	ctrlC    = tea.KeyMsg{Type: tea.KeyCtrlC}
	ctrlS    = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testSession() models.Session {
	return models.Session{
		UserID:  "u1",
		Name:    "Ann",
		Email:   "ann@example.com",
		Token:   "jwt",
		SavedAt: fixedNow.Add(-time.Hour),
	}
}

func testNotes() []models.Note {
	return []models.Note{
		{
			ID:        "n1",
			OwnerID:   "u1",
			Title:     "Groceries",
			Content:   "milk\neggs",
			IsPinned:  true,
			CreatedAt: fixedNow.Add(-48 * time.Hour),
			UpdatedAt: fixedNow.Add(-2 * time.Hour),
		},
		{
			ID:        "n2",
			OwnerID:   "u1",
			Title:     "Ideas",
			Content:   "write a tui",
			CreatedAt: fixedNow.Add(-72 * time.Hour),
			UpdatedAt: fixedNow.Add(-24 * time.Hour),
		},
	}
}

// requireQuit runs cmd and checks that it asks the program to exit.
func requireQuit(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}
