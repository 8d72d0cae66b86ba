// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCORS(t *testing.T) {
	tests := []struct {
		name       string
		origins    []string
		origin     string
		wantOrigin string
		wantVary   string
	}{
		{name: "no config allows any", origins: nil, origin: "https://a.example", wantOrigin: "*"},
		{name: "wildcard", origins: []string{"*"}, origin: "https://a.example", wantOrigin: "*"},
		{name: "listed origin is echoed", origins: []string{"https://a.example", "https://b.example"}, origin: "https://b.example", wantOrigin: "https://b.example", wantVary: "Origin"},
		{name: "unlisted origin", origins: []string{"https://a.example"}, origin: "https://evil.example"},
		{name: "no origin header", origins: []string{"https://a.example"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{cfg: Config{CORSOrigins: tt.origins}}
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/content", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			h.withCORS(next).ServeHTTP(rec, req)

			assert.True(t, nextCalled)
			assert.Equal(t, http.StatusTeapot, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantVary, rec.Header().Get("Vary"))
			assert.Equal(t, corsAllowedHeaders, rec.Header().Get("Access-Control-Allow-Headers"))
		})
	}
}

func TestPreflight(t *testing.T) {
	rec := httptest.NewRecorder()
	preflight(contentMethods).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/content", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "86400", rec.Header().Get("Access-Control-Max-Age"))
}
