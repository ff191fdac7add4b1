// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

// MenuModel is the first page of the login flow. It lets the user pick
// between signing in and creating an account.
type MenuModel struct {
	items  []string
	pages  []string
	idx    int
	status string
}

// NewMenuModel creates the menu. A non-empty status is shown above the
// choices.
func NewMenuModel(status string) *MenuModel {
	return &MenuModel{
		items:  []string{"Log in", "Register"},
		pages:  []string{pageLogin, pageRegister},
		status: status,
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		page := m.pages[m.idx]
		m.status = ""
		return m, func() tea.Msg { return NavigateTo{Page: page} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	width := 0
	for _, item := range m.items {
		width = max(width, lipgloss.Width(item))
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		row := fmt.Sprintf("%d  %-*s", i+1, width, item)
		if i == m.idx {
			row = selectedStyle.Render("> " + row)
		} else {
			row = "  " + row
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	return renderPage("GO-NOTES", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move │ v: version │ q: quit")
}
