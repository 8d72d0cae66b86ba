// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the Di-NEO server.
//
// It wires the chi router, the auth and content handlers and the middleware
// chain (trace id, access log, metrics, CORS, gzip, bearer authentication).
// Every failure is answered with a JSON `{"error": "..."}` body.
package http
