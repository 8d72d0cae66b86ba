// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/digiplay/dineo/internal/validators"
	"github.com/digiplay/dineo/models"
)

// ContentValidationService checks list filters and upload requests before
// they reach the wrapped ContentService.
type ContentValidationService struct {
	inner     ContentService
	validator validators.Validator
}

func NewContentValidationService() ContentServiceWrapper {
	return &ContentValidationService{
		validator: validators.NewContentValidator(),
	}
}

func (v *ContentValidationService) List(ctx context.Context, filter models.ContentFilter) ([]models.ContentItem, error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, err
	}
	return v.inner.List(ctx, filter)
}

func (v *ContentValidationService) Upload(ctx context.Context, userID int64, req models.UploadRequest) (models.ContentItem, error) {
	if userID <= 0 {
		return models.ContentItem{}, validators.ErrInvalidUserID
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ContentItem{}, err
	}
	return v.inner.Upload(ctx, userID, req)
}

func (v *ContentValidationService) Wrap(inner ContentService) ContentService {
	v.inner = inner
	return v
}
