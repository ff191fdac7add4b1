// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel routes the login flow between its pages:
// 1) keeps the active page
// 2) handles the global quit keys and the version window
// 3) handles NavigateTo messages
// 4) finishes the flow on a successful AuthResult
// Every other message goes to the active page.
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	clientVersion string
	showVersion   bool

	quitByUser bool
	session    models.Session
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage, clientVersion string) RootModel {
	return RootModel{
		pages:         pages,
		current:       pages[startPage],
		clientVersion: clientVersion,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case r.showVersion:
			if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.version) {
				r.showVersion = false
			}
			return r, nil
		case r.isMenuPage() && key.Matches(keyMsg, keys.version):
			r.showVersion = true
			return r, nil
		case r.isMenuPage() && key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		}
	}

	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}
		r.current = next
		return r, r.current.Init()
	}

	if result, ok := msg.(AuthResult); ok && result.Err == nil {
		r.session = result.Session
		return r, tea.Quit
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showVersion {
		return appStyle.Render(renderVersionWindow(r.clientVersion))
	}
	if r.current == nil {
		return renderPage("GO-NOTES", "", "")
	}
	return appStyle.Render(r.current.View())
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}

func renderVersionWindow(clientVersion string) string {
	version := strings.TrimSpace(clientVersion)
	if version == "" {
		version = "N/A"
	}
	return renderPage("ABOUT", "Application: go-notes\nClient version: "+version, "esc: back")
}
