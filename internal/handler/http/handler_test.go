// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes/internal/app"
	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/crypto"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/store/storetest"
	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_DefaultsRequestTimeout(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Server{}, logger.Nop())
	assert.Equal(t, defaultRequestTimeout, h.requestTimeout)

	h = NewHandler(&service.Services{}, config.Server{RequestTimeout: time.Second}, logger.Nop())
	assert.Equal(t, time.Second, h.requestTimeout)
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

func TestInit_AuthorizedRoutesRequireToken(t *testing.T) {
	router, _ := newMockedRouter(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/profile"},
		{http.MethodPut, "/api/auth/profile"},
		{http.MethodPut, "/api/auth/change-password"},
		{http.MethodGet, "/api/notes"},
		{http.MethodPost, "/api/notes"},
		{http.MethodPut, "/api/notes/" + testNoteID},
		{http.MethodDelete, "/api/notes/" + testNoteID},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rr := do(t, router, rt.method, rt.path, nil, "")

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, app.MsgNotAuthorizedNoToken, messageOf(t, rr))
		})
	}
}

func TestInit_UnknownMethodIsNotFound(t *testing.T) {
	router, _ := newMockedRouter(t)

	for _, rt := range []struct{ method, path string }{
		{http.MethodDelete, "/api/auth/login"},
		{http.MethodPatch, "/api/notes/" + testNoteID},
		{http.MethodPost, "/api/version"},
	} {
		rr := do(t, router, rt.method, rt.path, nil, "")
		assert.Equal(t, http.StatusNotFound, rr.Code, "%s %s", rt.method, rt.path)
	}
}

func TestInit_UnknownPathIsNotFound(t *testing.T) {
	router, _ := newMockedRouter(t)

	rr := do(t, router, http.MethodGet, "/api/unknown", nil, "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Not Found", messageOf(t, rr))
}

func TestInit_Root(t *testing.T) {
	router, _ := newMockedRouter(t)

	rr := do(t, router, http.MethodGet, "/", nil, "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, app.MsgAPIIsRunning, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_CORSPreflight(t *testing.T) {
	router, _ := newMockedRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/notes", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

// ─────────────────────────────────────────────
// end to end over in-memory storage
// ─────────────────────────────────────────────

func newEndToEndRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := config.App{
		PasswordHashKey:    "hash-key",
		TokenSignKey:       "sign-key",
		TokenIssuer:        "go-notes",
		TokenDuration:      time.Hour,
		ResetTokenDuration: time.Hour,
		ResetDelivery:      config.ResetDeliveryResponse,
		Version:            "test",
	}

	delivery, err := service.NewResetTokenDelivery(cfg.ResetDelivery, logger.Nop())
	require.NoError(t, err)
	appInfo, err := service.NewAppInfoService(cfg, logger.Nop())
	require.NoError(t, err)

	validator := validators.NewValidator()
	services := &service.Services{
		AuthService: service.NewAuthService(service.AuthDeps{
			Users:          storetest.NewUsers(),
			PasswordHasher: crypto.NewPasswordHasher(bcrypt.MinCost),
			ResetTokens:    crypto.NewResetTokenGenerator(cfg.PasswordHashKey),
			ResetDelivery:  delivery,
			Validator:      validator,
		}, cfg, logger.Nop()),
		NoteService:    service.NewNoteService(storetest.NewNotes(), validator, logger.Nop()),
		AppInfoService: appInfo,
	}

	return NewHandler(services, config.Server{}, logger.Nop()).Init()
}

func TestEndToEnd_NoteLifecycle(t *testing.T) {
	router := newEndToEndRouter(t)

	rr := do(t, router, http.MethodPost, "/api/auth/register",
		models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret"}, "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	token := decodeBody[models.AuthResponse](t, rr).Token
	require.NotEmpty(t, token)

	rr = do(t, router, http.MethodPost, "/api/notes", models.CreateNoteRequest{Title: "N1", Content: "first"}, token)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	created := decodeBody[models.Note](t, rr)
	assert.False(t, created.IsPinned)

	rr = do(t, router, http.MethodPut, "/api/notes/"+created.ID, `{"isPinned":true}`, token)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = do(t, router, http.MethodGet, "/api/notes", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	notes := decodeBody[[]models.Note](t, rr)
	require.Len(t, notes, 1)
	assert.True(t, notes[0].IsPinned)
	assert.Equal(t, "N1", notes[0].Title)
	assert.True(t, notes[0].UpdatedAt.After(created.UpdatedAt))

	rr = do(t, router, http.MethodDelete, "/api/notes/"+created.ID, nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, app.MsgNoteRemoved, messageOf(t, rr))

	rr = do(t, router, http.MethodGet, "/api/notes", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestEndToEnd_ForeignNoteIsHidden(t *testing.T) {
	router := newEndToEndRouter(t)

	register := func(email string) string {
		rr := do(t, router, http.MethodPost, "/api/auth/register",
			models.RegisterRequest{Name: "u", Email: email, Password: "secret"}, "")
		require.Equal(t, http.StatusCreated, rr.Code)
		return decodeBody[models.AuthResponse](t, rr).Token
	}
	alice, bob := register("alice@example.com"), register("bob@example.com")

	rr := do(t, router, http.MethodPost, "/api/notes", models.CreateNoteRequest{Title: "mine", Content: "c"}, alice)
	require.Equal(t, http.StatusCreated, rr.Code)
	note := decodeBody[models.Note](t, rr)

	rr = do(t, router, http.MethodPut, "/api/notes/"+note.ID, `{"title":"stolen"}`, bob)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, app.MsgNoteNotFound, messageOf(t, rr))

	rr = do(t, router, http.MethodDelete, "/api/notes/"+note.ID, nil, bob)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, router, http.MethodGet, "/api/notes", nil, alice)
	notes := decodeBody[[]models.Note](t, rr)
	require.Len(t, notes, 1)
	assert.Equal(t, "mine", notes[0].Title)
}

func TestEndToEnd_PasswordReset(t *testing.T) {
	router := newEndToEndRouter(t)

	rr := do(t, router, http.MethodPost, "/api/auth/register",
		models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "old"}, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = do(t, router, http.MethodPost, "/api/auth/forgot-password", models.ForgotPasswordRequest{Email: "ann@example.com"}, "")
	require.Equal(t, http.StatusOK, rr.Code)
	resetToken := decodeBody[models.ForgotPasswordResponse](t, rr).ResetToken
	require.NotEmpty(t, resetToken)

	rr = do(t, router, http.MethodPost, "/api/auth/reset-password",
		models.ResetPasswordRequest{Token: resetToken, NewPassword: "new"}, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, app.MsgPasswordReset, messageOf(t, rr))

	rr = do(t, router, http.MethodPost, "/api/auth/reset-password",
		models.ResetPasswordRequest{Token: resetToken, NewPassword: "again"}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidOrExpiredToken, messageOf(t, rr))

	rr = do(t, router, http.MethodPost, "/api/auth/login", models.LoginRequest{Email: "ann@example.com", Password: "old"}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = do(t, router, http.MethodPost, "/api/auth/login", models.LoginRequest{Email: "ann@example.com", Password: "new"}, "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestEndToEnd_PasswordTooLongIsBadRequest(t *testing.T) {
	router := newEndToEndRouter(t)
	long := strings.Repeat("a", 73)

	rr := do(t, router, http.MethodPost, "/api/auth/register",
		models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: long}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "password: must be at most 72 bytes", messageOf(t, rr))

	rr = do(t, router, http.MethodPost, "/api/auth/register",
		models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret"}, "")
	require.Equal(t, http.StatusCreated, rr.Code)
	token := decodeBody[models.AuthResponse](t, rr).Token

	rr = do(t, router, http.MethodPut, "/api/auth/change-password",
		models.ChangePasswordRequest{OldPassword: "secret", NewPassword: long}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "newPassword: must be at most 72 bytes", messageOf(t, rr))

	rr = do(t, router, http.MethodPost, "/api/auth/forgot-password", models.ForgotPasswordRequest{Email: "ann@example.com"}, "")
	require.Equal(t, http.StatusOK, rr.Code)
	resetToken := decodeBody[models.ForgotPasswordResponse](t, rr).ResetToken

	rr = do(t, router, http.MethodPost, "/api/auth/reset-password",
		models.ResetPasswordRequest{Token: resetToken, NewPassword: long}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "newPassword: must be at most 72 bytes", messageOf(t, rr))
}
