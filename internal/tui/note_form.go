// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	focusTitle = iota
	focusContent
)

// noteFormModel is the create and edit screen. The title is a single line
// input and the content a multi-line area, so enter moves from the title
// to the content and ctrl+s saves.
type noteFormModel struct {
	title   textinput.Model
	content textarea.Model
	focus   int

	editing    bool
	original   models.Note
	submitting bool
	errMsg     string
}

func newNoteForm(note *models.Note) noteFormModel {
	title := textinput.New()
	title.Placeholder = "title"
	title.Width = 50
	title.Focus()

	content := textarea.New()
	content.Placeholder = "content"
	content.SetWidth(60)
	content.SetHeight(8)
	content.ShowLineNumbers = false
	content.CharLimit = 0

	f := noteFormModel{title: title, content: content}
	if note == nil {
		return f
	}

	f.editing = true
	f.original = *note
	f.title.SetValue(note.Title)
	f.content.SetValue(note.Content)
	return f
}

func (f *noteFormModel) setFocus(focus int) {
	f.focus = focus
	if focus == focusTitle {
		f.content.Blur()
		f.title.Focus()
		return
	}
	f.title.Blur()
	f.content.Focus()
}

func (f *noteFormModel) toggleFocus() {
	if f.focus == focusTitle {
		f.setFocus(focusContent)
		return
	}
	f.setFocus(focusTitle)
}

func (f noteFormModel) titleValue() string {
	return strings.TrimSpace(f.title.Value())
}

// validate returns the message shown for an incomplete form, or "".
func (f noteFormModel) validate() string {
	if f.titleValue() == "" || strings.TrimSpace(f.content.Value()) == "" {
		return "Title and content are required"
	}
	return ""
}

// changes returns the fields that differ from the note being edited.
func (f noteFormModel) changes() models.NoteUpdate {
	var update models.NoteUpdate
	if title := f.titleValue(); title != f.original.Title {
		update.Title = &title
	}
	if content := f.content.Value(); content != f.original.Content {
		update.Content = &content
	}
	return update
}

func (f noteFormModel) updateFocused(msg tea.Msg) (noteFormModel, tea.Cmd) {
	var cmd tea.Cmd
	if f.focus == focusTitle {
		f.title, cmd = f.title.Update(msg)
	} else {
		f.content, cmd = f.content.Update(msg)
	}
	return f, cmd
}

func (f noteFormModel) View() string {
	pageTitle := "NEW NOTE"
	if f.editing {
		pageTitle = "EDIT: " + fitText(f.original.Title, titleColumnWidth)
	}

	var b strings.Builder
	b.WriteString("Title    [")
	b.WriteString(f.title.View())
	b.WriteString("]\n\n")
	b.WriteString("Content\n")
	b.WriteString(f.content.View())
	b.WriteString("\n")

	if f.submitting {
		b.WriteString("\n[Saving...]\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + f.errMsg))
		b.WriteString("\n")
	}

	return renderPage(pageTitle, strings.TrimRight(b.String(), "\n"), "esc: cancel │ tab: next field │ ctrl+s: save")
}
