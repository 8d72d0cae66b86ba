// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	focus    key.Binding
	enter    key.Binding
	esc      key.Binding
	reload   key.Binding
	upload   key.Binding
	login    key.Binding
	register key.Binding
	logout   key.Binding
	copy     key.Binding
	version  key.Binding
	quit     key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	focus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "sidebar/list")),
	enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	esc:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	upload:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "upload")),
	login:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "sign in")),
	register: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "sign up")),
	logout:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sign out")),
	copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy link")),
	version:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "about")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// browseHelp implements help.KeyMap for the browse screen.
type browseHelp struct {
	authenticated bool
}

func (h browseHelp) ShortHelp() []key.Binding {
	bindings := []key.Binding{keys.up, keys.down, keys.focus, keys.enter, keys.reload, keys.upload}
	if h.authenticated {
		bindings = append(bindings, keys.logout)
	} else {
		bindings = append(bindings, keys.login, keys.register)
	}
	return append(bindings, keys.version, keys.quit)
}

func (h browseHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
