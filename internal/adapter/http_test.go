// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/digiplay/dineo/internal/config"
	"github.com/digiplay/dineo/internal/logger"
	"github.com/digiplay/dineo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter points both endpoints at srv.
func newTestAdapter(t *testing.T, srv *httptest.Server) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		AuthURL:    srv.URL + "/api/auth",
		ContentURL: srv.URL + "/api/content",
	}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func decodeAuthRequest(t *testing.T, r *http.Request) models.AuthRequest {
	t.Helper()
	var req models.AuthRequest
	require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
	return req
}

// ── NewHTTPServerAdapter ────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidURLs(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.ClientAdapter
	}{
		{name: "empty auth", cfg: config.ClientAdapter{ContentURL: "http://x/api/content"}},
		{name: "no scheme", cfg: config.ClientAdapter{AuthURL: "localhost:8080/api/auth", ContentURL: "http://x/api/content"}},
		{name: "ftp content", cfg: config.ClientAdapter{AuthURL: "http://x/api/auth", ContentURL: "ftp://x/files"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPServerAdapter(tt.cfg, logger.Nop())
			assert.Error(t, err)
		})
	}
}

// ── Auth ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth", r.URL.Path)

		req := decodeAuthRequest(t, r)
		assert.Equal(t, models.AuthActionLogin, req.Action)
		assert.Equal(t, "neo@dineo.io", req.Email)
		assert.Equal(t, "secret", req.Password)
		assert.Empty(t, req.Username)

		writeJSON(t, w, http.StatusOK, models.AuthResponse{
			Token: "tok-1",
			User:  &models.User{ID: 7, Email: "neo@dineo.io", Username: "neo"},
		})
	}))
	defer srv.Close()

	resp, err := newTestAdapter(t, srv).Login(context.Background(), "neo@dineo.io", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, int64(7), resp.User.ID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "invalid email or password"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv).Login(context.Background(), "neo@dineo.io", "wrong")
	require.Error(t, err)
	assert.Equal(t, "invalid email or password", err.Error())
	assert.ErrorIs(t, err, ErrUnauthorized)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestRegister_SendsUsername(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := decodeAuthRequest(t, r)
		assert.Equal(t, models.AuthActionRegister, req.Action)
		assert.Equal(t, "neo", req.Username)

		writeJSON(t, w, http.StatusOK, models.AuthResponse{Token: "tok", User: &models.User{ID: 1, Username: "neo"}})
	}))
	defer srv.Close()

	resp, err := newTestAdapter(t, srv).Register(context.Background(), "neo@dineo.io", "neo", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.Token)
}

func TestRegister_DuplicateUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Error: "user with this email or username already exists"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv).Register(context.Background(), "neo@dineo.io", "neo", "secret")
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.EqualError(t, err, "user with this email or username already exists")
}

func TestLogin_ResponseWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.AuthResponse{User: &models.User{ID: 1}})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv).Login(context.Background(), "a@b.c", "p")
	assert.ErrorIs(t, err, ErrDecodeResponse)
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantID  int64
		wantErr error
	}{
		{
			name: "valid token",
			handler: func(w http.ResponseWriter, r *http.Request) {
				req := decodeAuthRequest(t, r)
				assert.Equal(t, models.AuthActionVerify, req.Action)
				assert.Equal(t, "tok", req.Token)
				writeJSON(t, w, http.StatusOK, models.AuthResponse{User: &models.User{ID: 3}})
			},
			wantID: 3,
		},
		{
			name: "expired token",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "invalid or expired token"})
			},
			wantErr: ErrUnauthorized,
		},
		{
			name: "not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>"))
			},
			wantErr: ErrDecodeResponse,
		},
		{
			name: "no user",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, http.StatusOK, map[string]any{})
			},
			wantErr: ErrDecodeResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			user, err := newTestAdapter(t, srv).Verify(context.Background(), "tok")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, user.ID)
		})
	}
}

// ── Content ─────────────────────────────────────────────────────────────────

func TestListContent_SendsFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/content", r.URL.Path)
		assert.Equal(t, "music", r.URL.Query().Get("type"))
		assert.Equal(t, "5", r.URL.Query().Get("user_id"))

		writeJSON(t, w, http.StatusOK, []models.ContentItem{{ID: 1, Type: models.ContentTypeMusic, Title: "Neon Nights"}})
	}))
	defer srv.Close()

	music := models.ContentTypeMusic
	owner := int64(5)
	items, err := newTestAdapter(t, srv).ListContent(context.Background(), models.ContentFilter{Type: &music, UserID: &owner})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Neon Nights", items[0].Title)
}

func TestListContent_NoFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte("null"))
	}))
	defer srv.Close()

	items, err := newTestAdapter(t, srv).ListContent(context.Background(), models.ContentFilter{})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestListContent_ServerErrorPlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down\n"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv).ListContent(context.Background(), models.ContentFilter{})
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.EqualError(t, err, "upstream down")
}

func TestListContent_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	a := newTestAdapter(t, srv)
	srv.Close()

	_, err := a.ListContent(context.Background(), models.ContentFilter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.EqualError(t, err, "network unavailable or server unreachable")
}

func TestListContent_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := newTestAdapter(t, srv).ListContent(ctx, models.ContentFilter{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestUploadContent_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tok-9", r.Header.Get("Authorization"))

		var req models.UploadRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.ContentTypeImage, req.Type)
		assert.Equal(t, "aGVsbG8=", req.FileData)

		writeJSON(t, w, http.StatusOK, models.ContentItem{ID: 12, Type: req.Type, Title: req.Title})
	}))
	defer srv.Close()

	item, err := newTestAdapter(t, srv).UploadContent(context.Background(), "tok-9", models.UploadRequest{
		Type:     models.ContentTypeImage,
		Title:    "Skyline",
		FileData: "aGVsbG8=",
		FileName: "skyline.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), item.ID)
}

func TestUploadContent_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "invalid token"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv).UploadContent(context.Background(), "stale", models.UploadRequest{})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.EqualError(t, err, "invalid token")
}

// ── errors ──────────────────────────────────────────────────────────────────

func TestAPIError_KindForStatus(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusMethodNotAllowed, ErrMethodNotAllowed},
		{http.StatusConflict, ErrConflict},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusServiceUnavailable, ErrInternalServerError},
		{http.StatusTeapot, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := newAPIError(tt.status, "")
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, http.StatusText(tt.status), err.Error())
		})
	}
}
