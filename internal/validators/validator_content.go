// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/digiplay/dineo/models"
)

// Field names accepted by [ContentValidator] for scoped validation.
const (
	// FieldRequired checks type, title, file_data and file_name are present.
	FieldRequired = "required"
	FieldType     = "type"
	FieldPrice    = "price"
	FieldDiscount = "discount"
	FieldUserID   = "user_id"
)

// ContentValidator checks upload requests and list filters.
type ContentValidator struct{}

func NewContentValidator() Validator {
	return &ContentValidator{}
}

func (v *ContentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UploadRequest:
		return v.validateUploadRequest(value, fields...)
	case *models.UploadRequest:
		return v.validateUploadRequest(*value, fields...)

	case models.ContentFilter:
		return v.validateFilter(value, fields...)
	case *models.ContentFilter:
		return v.validateFilter(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateUploadRequest runs checks in the order clients rely on: missing
// fields are reported before an invalid type.
func (v *ContentValidator) validateUploadRequest(req models.UploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired, FieldType, FieldPrice, FieldDiscount}
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			if req.Type == "" || blank(req.Title) || req.FileData == "" || blank(req.FileName) {
				return ErrUploadFieldsRequired
			}
		case FieldType:
			if !req.Type.Valid() {
				return ErrInvalidContentType
			}
		case FieldPrice:
			if req.Price < 0 {
				return ErrInvalidPrice
			}
		case FieldDiscount:
			if req.Discount < 0 || req.Discount > 100 {
				return ErrInvalidDiscount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ContentValidator) validateFilter(filter models.ContentFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldType, FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldType:
			if filter.Type != nil && !filter.Type.Valid() {
				return ErrInvalidContentType
			}
		case FieldUserID:
			if filter.UserID != nil && *filter.UserID <= 0 {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
