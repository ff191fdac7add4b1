// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-notes/models"

// NavigateTo switches the login flow to another page.
type NavigateTo struct {
	Page string
}

// AuthResult is produced by the login and register pages once the server
// answers.
type AuthResult struct {
	Session models.Session
	Err     error
}

type notesLoadedMsg struct {
	notes []models.Note
	err   error
}

type noteSavedMsg struct {
	note models.Note
	err  error
}

type pinToggledMsg struct {
	note models.Note
	err  error
}

type noteDeletedMsg struct {
	message string
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
