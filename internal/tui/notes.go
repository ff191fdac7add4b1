// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

const (
	titleColumnWidth   = 28
	previewColumnWidth = 40

	statusTimeout = 2 * time.Second
)

type notesMode int

const (
	modeList notesMode = iota
	modeSearch
	modeForm
	modeConfirmDelete
)

// notesModel is the signed-in screen: the note list with search, the note
// form and the delete confirmation. Every call carries the session it was
// started with.
type notesModel struct {
	ctx     context.Context
	notes   service.ClientNoteService
	session models.Session

	mode     notesMode
	items    []models.Note
	idx      int
	selectID string
	loading  bool
	query    string
	search   textinput.Model
	form     noteFormModel

	status string
	errMsg string
	logout bool

	now      func() time.Time
	copyText func(string) error
}

func newNotesModel(ctx context.Context, notes service.ClientNoteService, session models.Session) notesModel {
	search := textinput.New()
	search.Placeholder = "title or content"
	search.Width = 40

	return notesModel{
		ctx:      ctx,
		notes:    notes,
		session:  session,
		search:   search,
		loading:  true,
		now:      time.Now,
		copyText: clipboard.WriteAll,
	}
}

func (m notesModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m notesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = describeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.notes
		m.placeCursor()
		return m, nil
	case noteSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.form.errMsg = describeError(msg.err)
			return m, nil
		}
		m.mode = modeList
		m.status = "Note saved"
		cmd := m.reloadSelecting(msg.note.ID)
		return m, cmd
	case pinToggledMsg:
		if msg.err != nil {
			m.errMsg = describeError(msg.err)
			return m, nil
		}
		m.status = "Note unpinned"
		if msg.note.IsPinned {
			m.status = "Note pinned"
		}
		cmd := m.reloadSelecting(msg.note.ID)
		return m, cmd
	case noteDeletedMsg:
		if msg.err != nil {
			m.errMsg = describeError(msg.err)
			return m, nil
		}
		m.status = msg.message
		cmd := m.reloadSelecting("")
		return m, cmd
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("copy to clipboard: %v", msg.err)
			return m, nil
		}
		m.status = "Copied to clipboard"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch m.mode {
	case modeSearch:
		return m.updateSearch(msg)
	case modeForm:
		return m.updateForm(msg)
	case modeConfirmDelete:
		return m.updateConfirmDelete(msg)
	default:
		return m.updateList(msg)
	}
}

func (m notesModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.search):
		m.mode = modeSearch
		m.search.SetValue(m.query)
		m.search.CursorEnd()
		m.search.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.esc):
		if m.query == "" {
			return m, nil
		}
		m.query = ""
		cmd := m.reloadSelecting("")
		return m, cmd
	case key.Matches(keyMsg, keys.reload):
		cmd := m.reloadSelecting(m.currentID())
		return m, cmd
	case key.Matches(keyMsg, keys.newNote):
		m.form = newNoteForm(nil)
		m.mode = modeForm
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.edit), key.Matches(keyMsg, keys.enter):
		note, ok := m.current()
		if !ok {
			return m, nil
		}
		m.form = newNoteForm(&note)
		m.mode = modeForm
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.pin):
		note, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdSetPinned(note.ID, !note.IsPinned)
	case key.Matches(keyMsg, keys.delete):
		if _, ok := m.current(); ok {
			m.mode = modeConfirmDelete
		}
	case key.Matches(keyMsg, keys.copy):
		note, ok := m.current()
		if !ok || note.Content == "" {
			return m, nil
		}
		return m, m.cmdCopy(note.Content)
	}

	return m, nil
}

func (m notesModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.enter):
			m.mode = modeList
			m.search.Blur()
			m.query = strings.TrimSpace(m.search.Value())
			cmd := m.reloadSelecting("")
			return m, cmd
		case key.Matches(keyMsg, keys.esc):
			m.mode = modeList
			m.search.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m notesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.mode = modeList
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.form.toggleFocus()
			return m, nil
		case key.Matches(keyMsg, keys.enter) && m.form.focus == focusTitle:
			m.form.setFocus(focusContent)
			return m, textarea.Blink
		case key.Matches(keyMsg, keys.save):
			return m.saveForm()
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.updateFocused(msg)
	return m, cmd
}

func (m notesModel) saveForm() (tea.Model, tea.Cmd) {
	if m.form.submitting {
		return m, nil
	}
	if errMsg := m.form.validate(); errMsg != "" {
		m.form.errMsg = errMsg
		return m, nil
	}

	m.form.errMsg = ""
	if !m.form.editing {
		m.form.submitting = true
		return m, m.cmdCreate(m.form.titleValue(), m.form.content.Value())
	}

	update := m.form.changes()
	if update.IsEmpty() {
		m.mode = modeList
		m.status = "No changes"
		return m, nil
	}
	m.form.submitting = true
	return m, m.cmdUpdate(m.form.original.ID, update)
}

func (m notesModel) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		m.mode = modeList
		note, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdDelete(note.ID)
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.mode = modeList
	}
	return m, nil
}

func (m notesModel) current() (models.Note, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Note{}, false
	}
	return m.items[m.idx], true
}

func (m notesModel) currentID() string {
	note, _ := m.current()
	return note.ID
}

// reloadSelecting refetches the list and moves the cursor to noteID once
// it arrives. An empty noteID resets the cursor to the top.
func (m *notesModel) reloadSelecting(noteID string) tea.Cmd {
	m.loading = true
	m.selectID = noteID
	return m.cmdLoad()
}

func (m *notesModel) placeCursor() {
	if m.selectID != "" {
		for i, note := range m.items {
			if note.ID == m.selectID {
				m.idx = i
				break
			}
		}
	} else {
		m.idx = 0
	}
	m.selectID = ""

	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// ── view ────────────────────────────────────────────────────────────────────

func (m notesModel) View() string {
	if m.mode == modeForm {
		return appStyle.Render(m.form.View())
	}

	var b strings.Builder
	switch {
	case m.mode == modeSearch:
		b.WriteString("Search  [")
		b.WriteString(m.search.View())
		b.WriteString("]\n\n")
	case m.query != "":
		b.WriteString(fmt.Sprintf("Search: %q  (esc clears)\n\n", m.query))
	}

	b.WriteString(m.listView())

	if m.mode == modeConfirmDelete {
		note, _ := m.current()
		b.WriteString("\n")
		b.WriteString(overlayBoxStyle.Render(fmt.Sprintf("Delete %q?\n\ny: yes    n: no", fitText(note.Title, titleColumnWidth))))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	title := fmt.Sprintf("GO-NOTES · %s <%s>", m.session.Name, m.session.Email)
	hotKeys := "n: new │ e: edit │ p: pin │ d: delete │ c: copy │ /: search │ r: reload │ l: logout │ q: quit"
	return appStyle.Render(renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys))
}

func (m notesModel) listView() string {
	if m.loading && len(m.items) == 0 {
		return "Loading...\n"
	}
	if len(m.items) == 0 {
		if m.query != "" {
			return fmt.Sprintf("No notes match %q\n", m.query)
		}
		return "No notes yet, press n to add one\n"
	}

	now := m.now()
	var b strings.Builder
	for i, note := range m.items {
		marker := " "
		title := fitText(note.Title, titleColumnWidth-1)
		if note.IsPinned {
			marker = "*"
			if i != m.idx {
				title = pinnedStyle.Render(title)
			}
		}

		row := fmt.Sprintf("%s %s%s%s",
			marker,
			titleCellStyle.Render(title),
			previewCellStyle.Render(fitText(firstLine(note.Content), previewColumnWidth-1)),
			humanize.RelTime(note.UpdatedAt, now, "ago", "from now"),
		)
		if i == m.idx {
			row = selectedStyle.Render("> " + row)
		} else {
			row = "  " + row
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

// ── commands ────────────────────────────────────────────────────────────────

func (m notesModel) cmdLoad() tea.Cmd {
	ctx, notes, session, query := m.ctx, m.notes, m.session, m.query
	return func() tea.Msg {
		items, err := notes.List(ctx, session, query)
		return notesLoadedMsg{notes: items, err: err}
	}
}

func (m notesModel) cmdCreate(title, content string) tea.Cmd {
	ctx, notes, session := m.ctx, m.notes, m.session
	return func() tea.Msg {
		note, err := notes.Create(ctx, session, title, content)
		return noteSavedMsg{note: note, err: err}
	}
}

func (m notesModel) cmdUpdate(noteID string, update models.NoteUpdate) tea.Cmd {
	ctx, notes, session := m.ctx, m.notes, m.session
	return func() tea.Msg {
		note, err := notes.Update(ctx, session, noteID, update)
		return noteSavedMsg{note: note, err: err}
	}
}

func (m notesModel) cmdSetPinned(noteID string, pinned bool) tea.Cmd {
	ctx, notes, session := m.ctx, m.notes, m.session
	return func() tea.Msg {
		note, err := notes.SetPinned(ctx, session, noteID, pinned)
		return pinToggledMsg{note: note, err: err}
	}
}

func (m notesModel) cmdDelete(noteID string) tea.Cmd {
	ctx, notes, session := m.ctx, m.notes, m.session
	return func() tea.Msg {
		message, err := notes.Delete(ctx, session, noteID)
		return noteDeletedMsg{message: message, err: err}
	}
}

func (m notesModel) cmdCopy(text string) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		return copiedMsg{err: copyText(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
