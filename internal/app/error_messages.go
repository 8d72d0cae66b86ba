// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages the Di-NEO API writes into
// `{"error": ...}` response bodies. Clients show them verbatim, so the wording
// lives in one place.
package app

const (
	// MsgAuthFieldsRequired is returned by register when any field is empty.
	MsgAuthFieldsRequired = "email, username and password are required"

	// MsgLoginFieldsRequired is returned by login when email or password is empty.
	MsgLoginFieldsRequired = "email and password are required"

	// MsgUserAlreadyExists is returned when the email or username is taken.
	MsgUserAlreadyExists = "user with this email or username already exists"

	// MsgPasswordTooLong is returned when a password exceeds the bcrypt input limit.
	MsgPasswordTooLong = "password must not exceed 72 bytes"

	// MsgInvalidCredentials is returned for an unknown email or a wrong password.
	MsgInvalidCredentials = "invalid email or password"

	MsgTokenRequired = "token is required"

	// MsgInvalidOrExpiredToken is returned by verify for a bad signature, an
	// expired token, or a revoked session.
	MsgInvalidOrExpiredToken = "invalid or expired token"

	MsgUnknownAction = "unknown action: use register, login or verify"

	// MsgAuthorizationRequired is returned when a protected route has no
	// bearer token.
	MsgAuthorizationRequired = "authorization required"

	// MsgInvalidToken is returned when a protected route gets a bearer token
	// that does not verify.
	MsgInvalidToken = "invalid token"

	MsgUploadFieldsRequired = "type, title, file_data and file_name are required"

	MsgInvalidContentType = "invalid content type"

	MsgInvalidPrice = "price must not be negative"

	MsgInvalidDiscount = "discount must be between 0 and 100"

	MsgInvalidFileData = "invalid file_data format, base64 expected"

	MsgInvalidUserID = "invalid user_id"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON body"

	MsgMethodNotAllowed = "method not allowed"

	MsgNotFound = "not found"

	// MsgInternalServerError hides unexpected failures from clients.
	MsgInternalServerError = "internal server error"
)
