// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type formField struct {
	label    string
	input    textinput.Model
	password bool
}

// formModel is a column of labelled text inputs with one focused input.
type formModel struct {
	title      string
	fields     []formField
	focus      int
	submitting bool
	errMsg     string
}

func newFormModel(title string, fields ...formField) formModel {
	for i := range fields {
		in := textinput.New()
		in.Width = 40
		in.CharLimit = 256
		if fields[i].password {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		fields[i].input = in
	}

	m := formModel{title: title, fields: fields}
	if len(m.fields) > 0 {
		m.fields[0].input.Focus()
	}
	return m
}

func textField(label string) formField {
	return formField{label: label}
}

func passwordField(label string) formField {
	return formField{label: label, password: true}
}

func (m *formModel) value(i int) string {
	return m.fields[i].input.Value()
}

func (m *formModel) setValue(i int, v string) {
	m.fields[i].input.SetValue(v)
}

func (m *formModel) focusNext() {
	m.fields[m.focus].input.Blur()
	m.focus = (m.focus + 1) % len(m.fields)
	m.fields[m.focus].input.Focus()
}

func (m *formModel) focusPrev() {
	m.fields[m.focus].input.Blur()
	m.focus = (m.focus - 1 + len(m.fields)) % len(m.fields)
	m.fields[m.focus].input.Focus()
}

func (m *formModel) reset() {
	for i := range m.fields {
		m.fields[i].input.Reset()
		m.fields[i].input.Blur()
	}
	m.focus = 0
	m.submitting = false
	m.errMsg = ""
	if len(m.fields) > 0 {
		m.fields[0].input.Focus()
	}
}

// updateInput forwards msg to the focused input.
func (m *formModel) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return cmd
}

func (m *formModel) body() string {
	labelWidth := 0
	for _, f := range m.fields {
		labelWidth = max(labelWidth, lipgloss.Width(f.label))
	}

	var b strings.Builder
	for i, f := range m.fields {
		cursor := "  "
		if i == m.focus {
			cursor = focusedStyle.Render("> ")
		}
		fmt.Fprintf(&b, "%s%-*s [%s]\n", cursor, labelWidth, f.label, f.input.View())
	}

	if m.submitting {
		b.WriteString("\nsending...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m *formModel) View() string {
	return renderPage(m.title, m.body(), "esc: back │ tab: next field │ enter: submit")
}
