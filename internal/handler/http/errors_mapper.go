// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/digiplay/dineo/internal/app"
	"github.com/digiplay/dineo/internal/logger"
	"github.com/digiplay/dineo/internal/service"
	"github.com/digiplay/dineo/internal/utils"
	"github.com/digiplay/dineo/internal/validators"
)

// errorStatusMap lists the errors whose text may be shown to clients. Every
// other error is answered with 500 "internal server error".
var errorStatusMap = map[error]int{
	validators.ErrAuthFieldsRequired:   http.StatusBadRequest,
	validators.ErrLoginFieldsRequired:  http.StatusBadRequest,
	validators.ErrTokenRequired:        http.StatusBadRequest,
	validators.ErrUnknownAction:        http.StatusBadRequest,
	validators.ErrUploadFieldsRequired: http.StatusBadRequest,
	validators.ErrInvalidContentType:   http.StatusBadRequest,
	validators.ErrInvalidPrice:         http.StatusBadRequest,
	validators.ErrInvalidDiscount:      http.StatusBadRequest,
	validators.ErrInvalidUserID:        http.StatusBadRequest,

	service.ErrUserAlreadyExists:     http.StatusBadRequest,
	service.ErrPasswordTooLong:       http.StatusBadRequest,
	service.ErrInvalidFileData:       http.StatusBadRequest,
	service.ErrInvalidCredentials:    http.StatusUnauthorized,
	service.ErrInvalidOrExpiredToken: http.StatusUnauthorized,
}

// statusFromError returns the response status for err and the sentinel it
// matched, or 500 and nil.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeServiceError answers with the matched sentinel's message. Unknown
// errors are logged and hidden behind a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, target := statusFromError(err)
	if target == nil {
		log.Err(err).Msg("request failed")
		utils.WriteError(w, app.MsgInternalServerError, status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg("request rejected")
	utils.WriteError(w, target.Error(), status)
}
