// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP and gRPC transports of the Di-NEO server and
// stops them gracefully on SIGINT, SIGTERM or SIGQUIT.
package server
