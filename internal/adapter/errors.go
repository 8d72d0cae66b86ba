// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"net/http"
)

// Sentinel errors matched by [*APIError] according to the response status.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

var (
	// ErrNetwork is matched by every transport failure. Its text is what the
	// UI shows for such failures.
	ErrNetwork = errors.New("network unavailable or server unreachable")

	// ErrDecodeResponse is returned when a 2xx body cannot be decoded.
	ErrDecodeResponse = errors.New("unexpected response from server")
)

// APIError is a non-2xx response. Error returns the server's message
// verbatim.
type APIError struct {
	Status  int
	Message string

	kind error
}

func newAPIError(status int, message string) *APIError {
	if message == "" {
		message = http.StatusText(status)
	}
	return &APIError{Status: status, Message: message, kind: kindForStatus(status)}
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.kind
}

func kindForStatus(status int) error {
	switch {
	case status == http.StatusBadRequest:
		return ErrBadRequest
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status == http.StatusForbidden:
		return ErrForbidden
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusMethodNotAllowed:
		return ErrMethodNotAllowed
	case status == http.StatusConflict:
		return ErrConflict
	case status >= http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return ErrUnexpectedStatus
	}
}

// networkError hides the transport details behind the ErrNetwork text while
// keeping the cause reachable for logs and errors.Is.
type networkError struct {
	cause error
}

func (e *networkError) Error() string {
	return ErrNetwork.Error()
}

func (e *networkError) Unwrap() []error {
	return []error{ErrNetwork, e.cause}
}
