// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/digiplay/dineo/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses and an [*APIError] otherwise.
// The message is taken from a JSON {"error": ...} body, falling back to the
// raw body text.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var errResp models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errResp); err == nil && errResp.Error != "" {
		return newAPIError(resp.StatusCode(), errResp.Error)
	}

	return newAPIError(resp.StatusCode(), body)
}

// mapTransportError keeps context errors as they are and marks everything
// else as a network failure.
func mapTransportError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return ctxErr
	}
	return &networkError{cause: err}
}
