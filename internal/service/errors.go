// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/digiplay/dineo/internal/app"
)

// Server-side service errors. Errors whose text is an API message are written
// to clients as is.
var (
	ErrUserAlreadyExists     = errors.New(app.MsgUserAlreadyExists)
	ErrInvalidCredentials    = errors.New(app.MsgInvalidCredentials)
	ErrInvalidOrExpiredToken = errors.New(app.MsgInvalidOrExpiredToken)
	ErrPasswordTooLong       = errors.New(app.MsgPasswordTooLong)
	ErrInvalidFileData       = errors.New(app.MsgInvalidFileData)

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side service errors.
var (
	// ErrNotAuthenticated is returned by operations that need a session when
	// nobody is logged in.
	ErrNotAuthenticated = errors.New(app.MsgAuthorizationRequired)

	ErrNoFileSelected = errors.New("no file selected")
)
