// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/digiplay/dineo/internal/app"
	"github.com/digiplay/dineo/internal/logger"
	"github.com/digiplay/dineo/internal/utils"
	"github.com/digiplay/dineo/internal/validators"
	"github.com/digiplay/dineo/models"
)

// maxAuthBodyBytes bounds the auth request body.
const maxAuthBodyBytes = 64 << 10

// authenticate dispatches POST /api/auth on the "action" field.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.AuthRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAuthBodyBytes)).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	var (
		resp models.AuthResponse
		err  error
	)

	switch req.Action {
	case models.AuthActionRegister:
		resp, err = h.services.AuthService.Register(ctx, req.Email, req.Username, req.Password)
	case models.AuthActionLogin:
		resp, err = h.services.AuthService.Login(ctx, req.Email, req.Password)
	case models.AuthActionVerify:
		var user models.User
		user, err = h.services.AuthService.Verify(ctx, req.Token)
		resp = models.AuthResponse{User: &user}
	default:
		err = validators.ErrUnknownAction
	}

	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Debug().Str("action", string(req.Action)).Int64("user_id", resp.User.ID).Msg("auth request succeeded")

	utils.WriteJSON(w, resp, http.StatusOK)
}
