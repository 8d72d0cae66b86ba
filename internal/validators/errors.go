// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"

	"github.com/digiplay/dineo/internal/app"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrAuthFieldsRequired  = errors.New(app.MsgAuthFieldsRequired)
	ErrLoginFieldsRequired = errors.New(app.MsgLoginFieldsRequired)
	ErrTokenRequired       = errors.New(app.MsgTokenRequired)
	ErrUnknownAction       = errors.New(app.MsgUnknownAction)

	ErrUploadFieldsRequired = errors.New(app.MsgUploadFieldsRequired)
	ErrInvalidContentType   = errors.New(app.MsgInvalidContentType)
	ErrInvalidPrice         = errors.New(app.MsgInvalidPrice)
	ErrInvalidDiscount      = errors.New(app.MsgInvalidDiscount)
	ErrInvalidUserID        = errors.New(app.MsgInvalidUserID)
)
