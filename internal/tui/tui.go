// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive terminal front end of the notes client.
// It runs on the same client services as the flag commands.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
	options  []tea.ProgramOption
}

func New(services *service.ClientServices, logger *logger.Logger) *TUI {
	return &TUI{
		services: services,
		logger:   logger,
		options:  []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// Run resumes the stored session, or asks the user to sign in, and then
// shows the notes screen until the user quits. Logging out from the notes
// screen clears the session and returns to the sign-in pages.
func (t *TUI) Run(ctx context.Context) error {
	session, err := t.services.AuthService.Session(ctx)
	if errors.Is(err, service.ErrNotLoggedIn) {
		session, err = t.LoginFlow(ctx, "")
	}

	for err == nil {
		var logout bool
		if logout, err = t.MainLoop(ctx, session); err != nil || !logout {
			break
		}
		if err = t.services.AuthService.Logout(ctx); err != nil {
			break
		}
		t.logger.Debug().Str("user_id", session.UserID).Msg("logged out from the interactive client")
		session, err = t.LoginFlow(ctx, "Logged out")
	}

	if errors.Is(err, ErrUserQuit) {
		return nil
	}
	return err
}

// LoginFlow shows the menu, login and register pages and returns the
// session of the user who signed in.
func (t *TUI) LoginFlow(ctx context.Context, status string) (models.Session, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(status),
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, pageMenu, t.services.AppInfoService.ClientVersion())
	finalModel, err := t.program(ctx, root).Run()
	if err != nil {
		return models.Session{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Session{}, ErrUserQuit
	}
	return result.session, nil
}

// MainLoop shows the notes screen for session. It reports whether the user
// asked to log out.
func (t *TUI) MainLoop(ctx context.Context, session models.Session) (logout bool, err error) {
	model := newNotesModel(ctx, t.services.NoteService, session)
	finalModel, err := t.program(ctx, model).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(notesModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

func (t *TUI) program(ctx context.Context, model tea.Model) *tea.Program {
	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	return tea.NewProgram(model, options...)
}
