// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"
)

var (
	errLoginFieldsRequired    = errors.New("email and password are required")
	errRegisterFieldsRequired = errors.New("email, username and password are required")
)

const (
	loginEmail = iota
	loginPassword
)

const (
	registerEmail = iota
	registerUsername
	registerPassword
)

func newLoginForm() formModel {
	return newFormModel("SIGN IN",
		textField("Email"),
		passwordField("Password"),
	)
}

func newRegisterForm() formModel {
	return newFormModel("SIGN UP",
		textField("Email"),
		textField("Username"),
		passwordField("Password"),
	)
}

type loginInput struct {
	email    string
	password string
}

func (m *formModel) loginInput() (loginInput, error) {
	in := loginInput{
		email:    strings.TrimSpace(m.value(loginEmail)),
		password: m.value(loginPassword),
	}
	if in.email == "" || in.password == "" {
		return loginInput{}, errLoginFieldsRequired
	}
	return in, nil
}

type registerInput struct {
	email    string
	username string
	password string
}

func (m *formModel) registerInput() (registerInput, error) {
	in := registerInput{
		email:    strings.TrimSpace(m.value(registerEmail)),
		username: strings.TrimSpace(m.value(registerUsername)),
		password: m.value(registerPassword),
	}
	if in.email == "" || in.username == "" || in.password == "" {
		return registerInput{}, errRegisterFieldsRequired
	}
	return in, nil
}
