// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-notes/internal/app"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/mock"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// withTraceID
// ─────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name           string
		requestTraceID string
	}{
		{name: "reuses caller trace id", requestTraceID: "my-custom-trace-id"},
		{name: "generates trace id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.New(&buf, "test")}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			got := rr.Header().Get(traceIDHeader)
			if tt.requestTraceID != "" {
				assert.Equal(t, tt.requestTraceID, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
			assert.Contains(t, buf.String(), `"trace_id":"`+got+`"`)
		})
	}
}

// ─────────────────────────────────────────────
// withLogging
// ─────────────────────────────────────────────

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.New(&buf, "test")}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("Created"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/notes", nil)
	req = req.WithContext(h.logger.WithContext(req.Context()))
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	for _, want := range []string{`"method":"POST"`, `"uri":"/api/notes"`, `"status":201`, `"size":7`, `"duration":`} {
		assert.Contains(t, buf.String(), want)
	}
}

func TestWithLogging_ImplicitStatus(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.New(&buf, "test")}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(h.logger.WithContext(req.Context()))
	h.withLogging(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
		ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"status":200`)
}

// ─────────────────────────────────────────────
// responseWriter
// ─────────────────────────────────────────────

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusNotFound)
	w.WriteHeader(http.StatusOK)
	_, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	_, err = w.Write([]byte("de"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, http.StatusNotFound, w.status)
	assert.Equal(t, 5, w.size)
}

// ─────────────────────────────────────────────
// auth
// ─────────────────────────────────────────────

func newAuthMiddleware(t *testing.T) (http.Handler, *mock.MockAuthService, *string) {
	t.Helper()
	authSvc := mock.NewMockAuthService(gomock.NewController(t))
	h := &Handler{services: &service.Services{AuthService: authSvc}, logger: logger.Nop()}

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return h.auth(next), authSvc, &seen
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		wantMsg string
	}{
		{name: "missing header", header: "", wantMsg: app.MsgNotAuthorizedNoToken},
		{name: "wrong scheme", header: "Basic abc", wantMsg: app.MsgTokenIsExpiredOrInvalid},
		{name: "no token", header: "Bearer", wantMsg: app.MsgTokenIsExpiredOrInvalid},
		{name: "extra parts", header: "Bearer a b", wantMsg: app.MsgTokenIsExpiredOrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw, _, seen := newAuthMiddleware(t)

			req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			mw.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, tt.wantMsg, messageOf(t, rr))
			assert.Empty(t, *seen)
		})
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	mw, authSvc, seen := newAuthMiddleware(t)
	authSvc.EXPECT().ParseToken(gomock.Any(), "expired").
		Return(models.Token{}, errors.Join(service.ErrTokenIsExpiredOrInvalid, errors.New("token is expired")))

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, app.MsgTokenIsExpiredOrInvalid, messageOf(t, rr))
	assert.Empty(t, *seen)
}

func TestAuth_StoresUserID(t *testing.T) {
	mw, authSvc, seen := newAuthMiddleware(t)
	authSvc.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{UserID: testUserID}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req.Header.Set("Authorization", "bearer "+testToken)
	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, testUserID, *seen)
}

// ─────────────────────────────────────────────
// withCORS
// ─────────────────────────────────────────────

func TestWithCORS_SimpleRequestPassesThrough(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()
	withCORS(next).ServeHTTP(rr, req)

	assert.True(t, called)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, traceIDHeader, rr.Header().Get("Access-Control-Expose-Headers"))
}
