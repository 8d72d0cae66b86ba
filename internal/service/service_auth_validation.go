// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/digiplay/dineo/internal/validators"
	"github.com/digiplay/dineo/models"
)

// AuthValidationService rejects incomplete auth input before it reaches the
// wrapped AuthService. The returned validator errors carry the API message.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewAuthValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, email, username, password string) (models.AuthResponse, error) {
	req := models.AuthRequest{Action: models.AuthActionRegister, Email: email, Username: username, Password: password}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, err
	}
	return v.inner.Register(ctx, email, username, password)
}

func (v *AuthValidationService) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	req := models.AuthRequest{Action: models.AuthActionLogin, Email: email, Password: password}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, err
	}
	return v.inner.Login(ctx, email, password)
}

func (v *AuthValidationService) Verify(ctx context.Context, token string) (models.User, error) {
	req := models.AuthRequest{Action: models.AuthActionVerify, Token: token}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}
	return v.inner.Verify(ctx, token)
}

// ParseToken treats a blank token as invalid rather than missing.
func (v *AuthValidationService) ParseToken(ctx context.Context, token string) (models.Token, error) {
	if token == "" {
		return models.Token{}, ErrInvalidOrExpiredToken
	}
	return v.inner.ParseToken(ctx, token)
}

func (v *AuthValidationService) CleanupSessions(ctx context.Context) (int64, error) {
	return v.inner.CleanupSessions(ctx)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}
