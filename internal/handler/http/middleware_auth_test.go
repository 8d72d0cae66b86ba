// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/digiplay/dineo/internal/utils"
	"github.com/digiplay/dineo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- getTokenFromAuthHeader ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", wantToken: "abc"},
		{name: "surrounding spaces", header: "  Bearer   abc  ", wantToken: "abc"},
		{name: "empty header", header: "", wantErr: ErrEmptyAuthorizationHeader},
		{name: "token without scheme", header: "abc.def.ghi", wantErr: ErrInvalidAuthorizationHeader},
		{name: "other scheme", header: "Basic bmVvOnNlY3JldA==", wantErr: ErrInvalidAuthorizationHeader},
		{name: "scheme only", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ---- auth middleware ----

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/content", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)
	return rec
}

func TestAuth_StoresUserAndSessionInContext(t *testing.T) {
	h := newTestHandler(t, validTokenAuth(), nil)

	var gotUserID int64
	var gotSessionID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = utils.GetUserIDFromContext(r.Context())
		gotSessionID, _ = utils.GetSessionIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	rec := executeAuth(h, "Bearer good-token", next)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(7), gotUserID)
	assert.Equal(t, "sess-1", gotSessionID)
}

func TestAuth_RejectionDoesNotCallNext(t *testing.T) {
	h := newTestHandler(t, validTokenAuth(), nil)

	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	for _, header := range []string{"", "Bearer forged", "Token good-token"} {
		rec := executeAuth(h, header, next)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
	}
	assert.False(t, called)
}

func TestAuth_PassesTokenToService(t *testing.T) {
	var got string
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, token string) (models.Token, error) {
			got = token
			return tokenFor(1, "s"), nil
		},
	}

	executeAuth(newTestHandler(t, auth, nil), "Bearer eyJhbGciOiJIUzI1NiJ9.e30.sig", http.NotFoundHandler())

	assert.Equal(t, "eyJhbGciOiJIUzI1NiJ9.e30.sig", got)
}

func TestAuth_ConcurrentRequests(t *testing.T) {
	h := newTestHandler(t, validTokenAuth(), nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
			w.WriteHeader(http.StatusInternalServerError)
		}
	})

	var wg sync.WaitGroup
	codes := make([]int, 20)
	for i := range codes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			codes[i] = executeAuth(h, "Bearer good-token", next).Code
		}()
	}
	wg.Wait()

	for _, code := range codes {
		assert.Equal(t, http.StatusOK, code)
	}
}
