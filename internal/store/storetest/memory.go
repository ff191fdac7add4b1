// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package storetest provides in-memory implementations of the store
// repositories with the same error contract as the SQL ones. They back
// service and end-to-end HTTP tests that need state across calls.
package storetest

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/models"
)

// Users is an in-memory [store.UserRepository].
type Users struct {
	mu    sync.Mutex
	users map[string]models.User
	now   func() time.Time
}

func NewUsers() *Users {
	return &Users{users: make(map[string]models.User), now: time.Now}
}

func (u *Users) CreateUser(_ context.Context, user models.User) (models.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, existing := range u.users {
		if existing.Email == user.Email {
			return models.User{}, store.ErrEmailAlreadyExists
		}
	}

	now := u.now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now
	u.users[user.UserID] = user
	return user, nil
}

func (u *Users) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, user := range u.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (u *Users) FindUserByID(_ context.Context, userID string) (models.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	user, ok := u.users[userID]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return user, nil
}

func (u *Users) UpdateUserName(_ context.Context, userID, name string) (models.User, error) {
	return u.mutate(userID, func(user *models.User) {
		user.Name = name
		user.UpdatedAt = u.now().UTC()
	})
}

func (u *Users) UpdatePassword(_ context.Context, userID, passwordHash string) error {
	_, err := u.mutate(userID, func(user *models.User) {
		user.PasswordHash = passwordHash
		user.UpdatedAt = u.now().UTC()
	})
	return err
}

func (u *Users) SetResetToken(_ context.Context, userID, digest string, expiry time.Time) error {
	_, err := u.mutate(userID, func(user *models.User) {
		user.ResetTokenDigest = &digest
		user.ResetTokenExpiry = &expiry
	})
	return err
}

func (u *Users) ResetPassword(_ context.Context, digest, passwordHash string, now time.Time) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for id, user := range u.users {
		if !user.HasPendingReset() || *user.ResetTokenDigest != digest || !user.ResetTokenExpiry.After(now) {
			continue
		}
		user.PasswordHash = passwordHash
		user.ResetTokenDigest, user.ResetTokenExpiry = nil, nil
		user.UpdatedAt = u.now().UTC()
		u.users[id] = user
		return id, nil
	}
	return "", store.ErrResetTokenNotFound
}

func (u *Users) ClearResetToken(_ context.Context, digest string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	for id, user := range u.users {
		if user.ResetTokenDigest != nil && *user.ResetTokenDigest == digest {
			user.ResetTokenDigest, user.ResetTokenExpiry = nil, nil
			u.users[id] = user
		}
	}
	return nil
}

func (u *Users) PurgeExpiredResetTokens(_ context.Context, now time.Time) (int64, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	var purged int64
	for id, user := range u.users {
		if user.ResetTokenDigest != nil && user.ResetTokenExpiry != nil && !user.ResetTokenExpiry.After(now) {
			user.ResetTokenDigest, user.ResetTokenExpiry = nil, nil
			u.users[id] = user
			purged++
		}
	}
	return purged, nil
}

func (u *Users) mutate(userID string, fn func(user *models.User)) (models.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	user, ok := u.users[userID]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	fn(&user)
	u.users[userID] = user
	return user, nil
}

// Notes is an in-memory [store.NoteRepository]. Every write advances
// UpdatedAt strictly, even when the clock has not moved.
type Notes struct {
	mu    sync.Mutex
	notes map[string]models.Note
	now   func() time.Time
}

func NewNotes() *Notes {
	return &Notes{notes: make(map[string]models.Note), now: time.Now}
}

func (n *Notes) ListNotes(_ context.Context, userID string) ([]models.Note, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]models.Note, 0)
	for _, note := range n.notes {
		if note.OwnerID == userID {
			out = append(out, note)
		}
	}
	return out, nil
}

func (n *Notes) CreateNote(_ context.Context, note models.Note) (models.Note, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	now := n.now().UTC()
	note.CreatedAt, note.UpdatedAt = now, now
	n.notes[note.ID] = note
	return note, nil
}

func (n *Notes) UpdateNote(_ context.Context, userID, noteID string, update models.NoteUpdate) (models.Note, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	note, ok := n.notes[noteID]
	if !ok || note.OwnerID != userID {
		return models.Note{}, store.ErrNoteNotFound
	}

	if update.Title != nil {
		note.Title = *update.Title
	}
	if update.Content != nil {
		note.Content = *update.Content
	}
	if update.IsPinned != nil {
		note.IsPinned = *update.IsPinned
	}

	now := n.now().UTC()
	if !now.After(note.UpdatedAt) {
		now = note.UpdatedAt.Add(time.Microsecond)
	}
	note.UpdatedAt = now

	n.notes[noteID] = note
	return note, nil
}

func (n *Notes) DeleteNote(_ context.Context, userID, noteID string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	note, ok := n.notes[noteID]
	if !ok || note.OwnerID != userID {
		return store.ErrNoteNotFound
	}
	delete(n.notes, noteID)
	return nil
}

// Get returns the stored note regardless of owner.
func (n *Notes) Get(noteID string) (models.Note, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	note, ok := n.notes[noteID]
	return note, ok
}

var (
	_ store.UserRepository = (*Users)(nil)
	_ store.NoteRepository = (*Notes)(nil)
)
