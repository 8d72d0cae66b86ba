// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	authMethods    = "POST, OPTIONS"
	contentMethods = "GET, POST, OPTIONS"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS)
	router.Use(withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth", h.authenticate)
		r.Options("/api/auth", preflight(authMethods))

		r.Get("/api/content", h.listContent)
		r.Options("/api/content", preflight(contentMethods))

		r.Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/content", h.uploadContent)
	})

	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	if h.cfg.FilesDir != "" {
		router.Handle("/files/*", http.StripPrefix("/files/", http.FileServer(http.Dir(h.cfg.FilesDir))))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
