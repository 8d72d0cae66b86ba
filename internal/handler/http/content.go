// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/digiplay/dineo/internal/app"
	"github.com/digiplay/dineo/internal/logger"
	"github.com/digiplay/dineo/internal/utils"
	"github.com/digiplay/dineo/internal/validators"
	"github.com/digiplay/dineo/models"
)

// maxUploadBodyBytes bounds the JSON body of an upload, base64 payload included.
const maxUploadBodyBytes = 64 << 20

// listContent serves GET /api/content?type=&user_id=.
func (h *Handler) listContent(w http.ResponseWriter, r *http.Request) {
	filter, err := contentFilterFromQuery(r.URL.Query())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	items, err := h.services.ContentService.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

// uploadContent serves POST /api/content. It runs behind the auth middleware.
func (h *Handler) uploadContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteError(w, app.MsgAuthorizationRequired, http.StatusUnauthorized)
		return
	}

	var req models.UploadRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxUploadBodyBytes)).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn().Int64("limit", tooLarge.Limit).Msg("upload body too large")
			utils.WriteError(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
			return
		}
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	item, err := h.services.ContentService.Upload(ctx, userID, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.metrics.IncUploads(item.Type)
	log.Info().Int64("content_id", item.ID).Str("type", string(item.Type)).Msg("content published")

	utils.WriteJSON(w, item, http.StatusOK)
}

// contentFilterFromQuery reads the optional "type" and "user_id" parameters.
// Type values are checked by the content service.
func contentFilterFromQuery(query url.Values) (models.ContentFilter, error) {
	var filter models.ContentFilter

	if raw := query.Get("type"); raw != "" {
		contentType := models.ContentType(raw)
		filter.Type = &contentType
	}

	if raw := query.Get("user_id"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return models.ContentFilter{}, fmt.Errorf("%w: %w", validators.ErrInvalidUserID, err)
		}
		filter.UserID = &userID
	}

	return filter, nil
}
