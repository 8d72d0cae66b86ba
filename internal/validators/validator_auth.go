// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/digiplay/dineo/models"
)

// AuthValidator checks [models.AuthRequest] according to its action.
type AuthValidator struct{}

func NewAuthValidator() Validator {
	return &AuthValidator{}
}

// Validate checks the fields the request's action needs. Field scoping is not
// supported for auth requests.
func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AuthRequest:
		return v.validateAuthRequest(value)
	case *models.AuthRequest:
		return v.validateAuthRequest(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *AuthValidator) validateAuthRequest(req models.AuthRequest) error {
	switch req.Action {
	case models.AuthActionRegister:
		if blank(req.Email) || blank(req.Username) || req.Password == "" {
			return ErrAuthFieldsRequired
		}
	case models.AuthActionLogin:
		if blank(req.Email) || req.Password == "" {
			return ErrLoginFieldsRequired
		}
	case models.AuthActionVerify:
		if blank(req.Token) {
			return ErrTokenRequired
		}
	default:
		return ErrUnknownAction
	}

	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
