// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/digiplay/dineo/internal/config"
	"github.com/digiplay/dineo/internal/logger"
	"github.com/digiplay/dineo/internal/utils"
	"github.com/digiplay/dineo/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	authURL    string
	contentURL string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// Both endpoint URLs must be absolute http(s) URLs.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	authURL, err := normalizeEndpoint(cfg.AuthURL)
	if err != nil {
		return nil, fmt.Errorf("invalid auth url: %w", err)
	}
	contentURL, err := normalizeEndpoint(cfg.ContentURL)
	if err != nil {
		return nil, fmt.Errorf("invalid content url: %w", err)
	}

	return &httpServerAdapter{
		client:     utils.NewHTTPClient(cfg.RequestTimeout),
		authURL:    authURL,
		contentURL: contentURL,
		logger:     logger,
	}, nil
}

func normalizeEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("address must include http(s) scheme and host")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Verify posts {action: verify, token} to the auth endpoint.
func (h *httpServerAdapter) Verify(ctx context.Context, token string) (models.User, error) {
	var resp models.AuthResponse
	err := h.postAuth(ctx, models.AuthRequest{Action: models.AuthActionVerify, Token: token}, &resp)
	if err != nil {
		return models.User{}, err
	}
	if resp.User == nil {
		return models.User{}, fmt.Errorf("%w: verify response without user", ErrDecodeResponse)
	}

	return *resp.User, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	return h.authenticate(ctx, models.AuthRequest{
		Action:   models.AuthActionLogin,
		Email:    email,
		Password: password,
	})
}

func (h *httpServerAdapter) Register(ctx context.Context, email, username, password string) (models.AuthResponse, error) {
	return h.authenticate(ctx, models.AuthRequest{
		Action:   models.AuthActionRegister,
		Email:    email,
		Username: username,
		Password: password,
	})
}

// authenticate requires both a token and a user in the response.
func (h *httpServerAdapter) authenticate(ctx context.Context, req models.AuthRequest) (models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := h.postAuth(ctx, req, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	if resp.Token == "" || resp.User == nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %s response without token or user", ErrDecodeResponse, req.Action)
	}

	return resp, nil
}

func (h *httpServerAdapter) postAuth(ctx context.Context, req models.AuthRequest, out *models.AuthResponse) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(h.authURL)
	if err != nil {
		h.logger.Warn().Err(err).Str("func", "*httpServerAdapter.postAuth").Str("action", string(req.Action)).Msg("auth request failed")
		return mapTransportError(ctx, err)
	}

	return decodeResponse(resp, out)
}

// ListContent sends GET with optional type and user_id query parameters.
func (h *httpServerAdapter) ListContent(ctx context.Context, filter models.ContentFilter) ([]models.ContentItem, error) {
	req := h.client.R().SetContext(ctx)
	if filter.Type != nil {
		req.SetQueryParam("type", string(*filter.Type))
	}
	if filter.UserID != nil {
		req.SetQueryParam("user_id", strconv.FormatInt(*filter.UserID, 10))
	}

	resp, err := req.Get(h.contentURL)
	if err != nil {
		h.logger.Warn().Err(err).Str("func", "*httpServerAdapter.ListContent").Msg("content request failed")
		return nil, mapTransportError(ctx, err)
	}

	var items []models.ContentItem
	if err := decodeResponse(resp, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.ContentItem{}
	}

	return items, nil
}

// UploadContent posts req with token as the bearer credential.
func (h *httpServerAdapter) UploadContent(ctx context.Context, token string, req models.UploadRequest) (models.ContentItem, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(req).
		Post(h.contentURL)
	if err != nil {
		h.logger.Warn().Err(err).Str("func", "*httpServerAdapter.UploadContent").Msg("upload request failed")
		return models.ContentItem{}, mapTransportError(ctx, err)
	}

	var item models.ContentItem
	if err := decodeResponse(resp, &item); err != nil {
		return models.ContentItem{}, err
	}

	return item, nil
}

// decodeResponse maps non-2xx responses to errors and unmarshals the body of
// successful ones into out.
func decodeResponse(resp *resty.Response, out any) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	return nil
}
