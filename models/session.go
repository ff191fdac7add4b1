// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the client-side record of an authenticated user.
//
// It is created on register/login, saved to the client's local database and
// cleared on logout. Client operations receive it explicitly instead of
// reading ambient state.
type Session struct {
	UserID  string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}

// IsZero reports whether the session carries no token.
func (s Session) IsZero() bool {
	return s.Token == ""
}
