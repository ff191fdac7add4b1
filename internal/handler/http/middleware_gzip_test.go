// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-notes/internal/app"
	"github.com/MKhiriev/go-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, r io.Reader) []byte {
	t.Helper()
	zr, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer zr.Close()
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	return body
}

// ── through the router ──────────────────────────────────────────────────────

func TestGZip_CompressedCreateNoteBody(t *testing.T) {
	router, m := newMockedRouter(t)
	m.expectAuthorized()
	want := models.CreateNoteRequest{Title: "Groceries", Content: "milk"}
	m.notes.EXPECT().Create(gomock.Any(), testUserID, want).Return(testNote(), nil)

	raw, err := json.Marshal(want)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/notes", bytes.NewReader(gzipBytes(t, raw)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Authorization", "Bearer "+testToken)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"), "client did not ask for a compressed response")
	assert.Equal(t, testNoteID, decodeBody[models.Note](t, rr).ID)
}

func TestGZip_CompressedListNotesResponse(t *testing.T) {
	router, m := newMockedRouter(t)
	m.expectAuthorized()
	m.notes.EXPECT().List(gomock.Any(), testUserID, "").Return([]models.Note{testNote()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req.Header.Set("Accept-Encoding", "deflate, gzip;q=1.0")
	req.Header.Set("Authorization", "Bearer "+testToken)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
	assert.Empty(t, rr.Header().Get("Content-Length"))
	assert.NotEmpty(t, rr.Header().Get("X-Trace-ID"))

	var notes []models.Note
	require.NoError(t, json.Unmarshal(gunzip(t, rr.Body), &notes))
	require.Len(t, notes, 1)
	assert.Equal(t, testNote(), notes[0])
}

func TestGZip_ErrorResponsesAreCompressedToo(t *testing.T) {
	router, _ := newMockedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	var msg models.MessageResponse
	require.NoError(t, json.Unmarshal(gunzip(t, rr.Body), &msg))
	assert.Equal(t, app.MsgNotAuthorizedNoToken, msg.Message)
}

func TestGZip_CorruptRequestBodyIsBadRequest(t *testing.T) {
	router, _ := newMockedRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString("not gzip at all"))
	req.Header.Set("Content-Encoding", "gzip")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, messageOf(t, rr))
}

func TestGZip_PlainTextRoot(t *testing.T) {
	router, _ := newMockedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Equal(t, app.MsgAPIIsRunning, string(bytes.TrimSpace(gunzip(t, rr.Body))))
}

func TestGZip_PooledReadersAcrossRequests(t *testing.T) {
	router, m := newMockedRouter(t)

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		req := models.LoginRequest{Email: email, Password: "secret"}
		m.auth.EXPECT().Login(gomock.Any(), req).
			Return(models.AuthResult{User: models.User{UserID: testUserID, Email: email}}, nil)

		raw, err := json.Marshal(req)
		require.NoError(t, err)

		httpReq := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(gzipBytes(t, raw)))
		httpReq.Header.Set("Content-Encoding", "gzip")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httpReq)

		require.Equal(t, http.StatusOK, rr.Code, email)
		assert.Equal(t, email, decodeBody[models.AuthResponse](t, rr).Email)
	}
}

// ── gzipResponseWriter ──────────────────────────────────────────────────────

func TestGZip_BodylessStatusesPassThrough(t *testing.T) {
	for _, status := range []int{http.StatusNoContent, http.StatusNotModified} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, status, rr.Code)
			assert.Empty(t, rr.Header().Get("Content-Encoding"))
			assert.Empty(t, rr.Header().Get("Vary"))
			assert.Zero(t, rr.Body.Len(), "no gzip footer on a bodyless response")
		})
	}
}

func TestGZip_SecondWriteHeaderIsIgnored(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("created"))
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, []string{"Accept-Encoding"}, rr.Header().Values("Vary"))
	assert.Equal(t, "created", string(gunzip(t, rr.Body)))
}

func TestWrappedReadCloser_Close(t *testing.T) {
	closed := false
	wrapped := &wrappedReadCloser{Reader: bytes.NewReader(nil), OnClose: func() { closed = true }}

	assert.NoError(t, wrapped.Close())
	assert.True(t, closed)

	assert.NoError(t, (&wrappedReadCloser{Reader: bytes.NewReader(nil)}).Close())
}
