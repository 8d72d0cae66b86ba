// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a Di-NEO account as seen by both the server and the client.
//
// PasswordHash never leaves the server: it is excluded from JSON and is only
// populated by the persistence layer during login.
type User struct {
	// ID is the numeric account identifier.
	ID int64 `json:"id"`

	// Email is the unique address used to sign in.
	Email string `json:"email"`

	// Username is the unique public handle shown as the author of content.
	Username string `json:"username"`

	// AvatarURL is an optional link to the profile picture.
	AvatarURL *string `json:"avatar_url,omitempty"`

	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash string `json:"-"`

	// CreatedAt is the registration time.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
