// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
)

const corsAllowedHeaders = "Content-Type, Authorization"

// withCORS sets the CORS headers on every response, errors included.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	allowAny := len(h.cfg.CORSOrigins) == 0 || slices.Contains(h.cfg.CORSOrigins, "*")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		switch {
		case allowAny:
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case origin != "" && slices.Contains(h.cfg.CORSOrigins, origin):
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Headers", corsAllowedHeaders)

		next.ServeHTTP(w, r)
	})
}

// preflight answers OPTIONS requests with the methods of the route.
func preflight(methods string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Access-Control-Allow-Methods", methods)
		w.Header().Set("Access-Control-Max-Age", "86400")
		w.WriteHeader(http.StatusOK)
	}
}
