// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthAction selects the operation performed by the auth endpoint.
type AuthAction string

const (
	AuthActionRegister AuthAction = "register"
	AuthActionLogin    AuthAction = "login"
	AuthActionVerify   AuthAction = "verify"
)

// AuthRequest is the body of POST /api/auth. Which fields are required
// depends on Action.
type AuthRequest struct {
	Action   AuthAction `json:"action"`
	Token    string     `json:"token,omitempty"`
	Email    string     `json:"email,omitempty"`
	Username string     `json:"username,omitempty"`
	Password string     `json:"password,omitempty"`
}

// AuthResponse is returned by a successful auth call. Token is empty for
// verify.
type AuthResponse struct {
	Token string `json:"token,omitempty"`
	User  *User  `json:"user"`
}
