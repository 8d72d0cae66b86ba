// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultSessionDuration is the lifetime of a server-side session.
const DefaultSessionDuration = 30 * 24 * time.Hour

// Session is the client-side authentication state: the bearer token and the
// user it belongs to. The zero value means "not signed in".
type Session struct {
	Token string
	User  *User
}

// IsEmpty reports whether the session carries no token.
func (s Session) IsEmpty() bool {
	return s.Token == "" || s.User == nil
}

// StoredSession is a server-side session row. The token's jti claim carries ID,
// so deleting the row revokes the token even before it expires.
type StoredSession struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the StoredSession model.
func (s StoredSession) TableName() string {
	return "sessions"
}

// Expired reports whether the session is no longer valid at now.
func (s StoredSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
