// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func buildRouter() *chi.Mux {
	r := chi.NewRouter()
	ok := func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

	r.Get("/single", ok)
	r.Get("/multi", ok)
	r.Post("/multi", ok)
	r.Get("/items/{id}", ok)

	r.MethodNotAllowed(CheckHTTPMethod(r))
	r.NotFound(notFound)
	return r
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{name: "registered method", method: http.MethodGet, path: "/single", wantStatus: http.StatusOK},
		{name: "single method route", method: http.MethodPost, path: "/single", wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET"},
		{name: "multi method route", method: http.MethodDelete, path: "/multi", wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET, POST"},
		{name: "parameterised route has no Allow", method: http.MethodPut, path: "/items/1", wantStatus: http.StatusMethodNotAllowed},
		{name: "unknown path", method: http.MethodGet, path: "/missing", wantStatus: http.StatusNotFound},
	}

	router := buildRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Allow"))

			switch tt.wantStatus {
			case http.StatusMethodNotAllowed:
				assert.JSONEq(t, `{"error":"method not allowed"}`, rec.Body.String())
			case http.StatusNotFound:
				assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
			}
		})
	}
}
