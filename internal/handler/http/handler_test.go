// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/digiplay/dineo/internal/config"
	"github.com/digiplay/dineo/internal/logger"
	"github.com/digiplay/dineo/internal/service"
	"github.com/digiplay/dineo/internal/store"
	"github.com/digiplay/dineo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewHandler / ConfigFrom
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	h := NewHandler(svc, Config{FilesDir: "uploads"}, nil, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, "uploads", h.cfg.FilesDir)
	assert.NotNil(t, h.metrics, "metrics are created when none are passed")
}

func TestConfigFrom(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.StructuredConfig
		want Config
	}{
		{
			name: "filesystem uploads are served",
			cfg: config.StructuredConfig{
				Server:  config.Server{CORSOrigins: []string{"*"}, RequestTimeout: time.Second},
				Storage: config.Storage{Files: config.Files{Dir: "/var/dineo"}},
			},
			want: Config{CORSOrigins: []string{"*"}, RequestTimeout: time.Second, FilesDir: "/var/dineo"},
		},
		{
			name: "s3 uploads are not served locally",
			cfg: config.StructuredConfig{
				Storage: config.Storage{
					Files: config.Files{Dir: "/var/dineo"},
					S3:    config.S3{Bucket: "dineo"},
				},
			},
			want: Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFrom(tt.cfg))
		})
	}
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	{http.MethodPost, "/api/auth"},
	{http.MethodOptions, "/api/auth"},
	{http.MethodGet, "/api/content"},
	{http.MethodOptions, "/api/content"},
	// auth middleware answers 401, which still proves the route exists
	{http.MethodPost, "/api/content"},
	{http.MethodGet, "/api/version"},
	{http.MethodGet, "/metrics"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	content := &mockContentService{
		listFn: func(context.Context, models.ContentFilter) ([]models.ContentItem, error) {
			return []models.ContentItem{}, nil
		},
	}
	router := newTestHandler(t, nil, content).Init()

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader("{}"))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.NotEqual(t, http.StatusNotFound, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestInit_UnknownRouteReturnsJSON404(t *testing.T) {
	router := newTestHandler(t, nil, nil).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
}

func TestInit_WrongMethodReturnsJSON405(t *testing.T) {
	router := newTestHandler(t, nil, nil).Init()

	tests := []struct {
		method    string
		path      string
		wantAllow string
	}{
		{http.MethodGet, "/api/auth", "OPTIONS, POST"},
		{http.MethodDelete, "/api/content", "GET, OPTIONS, POST"},
		{http.MethodPut, "/api/auth", "OPTIONS, POST"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.JSONEq(t, `{"error":"method not allowed"}`, rec.Body.String())
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Allow"))
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestInit_Preflight(t *testing.T) {
	router := newTestHandler(t, nil, nil).Init()

	tests := []struct {
		path        string
		wantMethods string
	}{
		{"/api/auth", "POST, OPTIONS"},
		{"/api/content", "GET, POST, OPTIONS"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, tt.path, nil)
			req.Header.Set("Origin", "https://dineo.example")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantMethods, rec.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, "Content-Type, Authorization", rec.Header().Get("Access-Control-Allow-Headers"))
			assert.Empty(t, rec.Body.String())
		})
	}
}

func TestInit_ResponsesCarryTraceID(t *testing.T) {
	router := newTestHandler(t, nil, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
}

func TestInit_MetricsEndpointCountsRequests(t *testing.T) {
	router := newTestHandler(t, nil, nil).Init()

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/version", nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(),
		`dineo_http_requests_total{method="GET",route="/api/version",status_code="200"} 1`)
}

func TestInit_ServesLocalFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "images", "sunset.jpg"), []byte("jpeg-bytes"), 0o644))

	svcs := &service.Services{AppInfoService: &mockAppInfoService{}}
	router := NewHandler(svcs, Config{FilesDir: dir}, nil, logger.Nop()).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/files/images/sunset.jpg", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(body))
}

func TestInit_ServesWhatLocalStorageWrites(t *testing.T) {
	cfg := config.StructuredConfig{
		Storage: config.Storage{Files: config.Files{Dir: t.TempDir(), PublicBaseURL: "/files/"}},
	}
	files, err := store.NewLocalFileStorage(cfg.Storage.Files, logger.Nop())
	require.NoError(t, err)

	url, err := files.Put(context.Background(), "musics/id_song.mp3", "audio/mpeg", []byte("tune"))
	require.NoError(t, err)

	svcs := &service.Services{AppInfoService: &mockAppInfoService{}}
	router := NewHandler(svcs, ConfigFrom(cfg), nil, logger.Nop()).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tune", rec.Body.String())
}

func TestInit_FilesNotServedWithoutDir(t *testing.T) {
	router := newTestHandler(t, nil, nil).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/files/images/sunset.jpg", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_RecoversFromPanics(t *testing.T) {
	content := &mockContentService{
		listFn: func(context.Context, models.ContentFilter) ([]models.ContentItem, error) {
			panic("boom")
		},
	}
	router := newTestHandler(t, nil, content).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/content", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// Version
// ─────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	router := newTestHandler(t, nil, nil).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test-version", rec.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
}

// decodeError reads a `{"error": ...}` body.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body.Error
}
