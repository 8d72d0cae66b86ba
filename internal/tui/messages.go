// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/digiplay/dineo/models"

type loadedMsg struct {
	section models.Section
	err     error
}

// authDoneMsg carries the result of a sign-in or sign-up started from the
// from screen.
type authDoneMsg struct {
	from    screen
	session models.Session
	err     error
}

type uploadDoneMsg struct {
	item models.ContentItem
	err  error
}

type logoutDoneMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
