// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/mock"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testUserID = "0190a0d4-7a3e-7c00-8000-0000000000aa"
	testNoteID = "0190a0d4-7a3e-7c00-8000-0000000000bb"
	testToken  = "signed.jwt.token"
)

type mockedServices struct {
	auth    *mock.MockAuthService
	notes   *mock.MockNoteService
	appInfo *mock.MockAppInfoService
}

// newMockedRouter builds the full router over gomock services.
func newMockedRouter(t *testing.T) (http.Handler, mockedServices) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mockedServices{
		auth:    mock.NewMockAuthService(ctrl),
		notes:   mock.NewMockNoteService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:    m.auth,
		NoteService:    m.notes,
		AppInfoService: m.appInfo,
	}, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())

	return h.Init(), m
}

// expectAuthorized makes the auth middleware accept testToken as testUserID.
func (m mockedServices) expectAuthorized() {
	m.auth.EXPECT().ParseToken(gomock.Any(), testToken).
		Return(models.Token{SignedString: testToken, UserID: testUserID}, nil)
}

// do sends a request with an optional JSON body and bearer token.
func do(t *testing.T, router http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), "body: %s", rr.Body.String())
	return out
}

func messageOf(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[models.MessageResponse](t, rr).Message
}
