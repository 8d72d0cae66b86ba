// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/digiplay/dineo/internal/adapter"
)

// humanizeError returns the text shown to the user for err. Server messages
// are passed through; transport failures share one message.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, adapter.ErrNetwork) || errors.Is(err, context.DeadlineExceeded) {
		return adapter.ErrNetwork.Error()
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "i/o timeout") {
		return adapter.ErrNetwork.Error()
	}

	return err.Error()
}
