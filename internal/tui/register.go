// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RegisterModel is the sign-up page. It renders name, email, password and
// password confirmation inputs. Registration signs the user in, so a
// successful [AuthResult] ends the flow the same way a login does.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with the name input focused.
func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "name"
	nameInput.Width = 40
	nameInput.Focus()

	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40

	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		inputs: []textinput.Model{
			nameInput,
			emailInput,
			newPasswordInput("password"),
			newPasswordInput("repeat password"),
		},
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles:
//   - [AuthResult]  clears submitting state; on error, populates errMsg.
//   - esc           back to the menu.
//   - tab/shift+tab moves focus between inputs.
//   - enter         validates inputs (all required, passwords must match)
//     and dispatches the async registration.
//
// Other keys go to the focused input.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(AuthResult); ok {
		m.submitting = false
		m.errMsg = describeError(result.Err)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.focus = moveFocus(m.inputs, m.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focus = moveFocus(m.inputs, m.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			req := models.RegisterRequest{
				Name:     strings.TrimSpace(m.inputs[0].Value()),
				Email:    strings.TrimSpace(m.inputs[1].Value()),
				Password: m.inputs[2].Value(),
			}
			if req.Name == "" || req.Email == "" || req.Password == "" {
				m.errMsg = "Name, email and password are required"
				return m, nil
			}
			if req.Password != m.inputs[3].Value() {
				m.errMsg = "Passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(req)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	labels := []string{"Name      ", "Email     ", "Password  ", "Repeat    "}

	var b strings.Builder
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString("[")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.Register(ctx, req)
		return AuthResult{Session: session, Err: err}
	}
}
