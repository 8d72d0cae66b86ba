// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/digiplay/dineo/internal/adapter"
	"github.com/digiplay/dineo/internal/logger"
	"github.com/digiplay/dineo/internal/store"
	"github.com/digiplay/dineo/models"
)

// ClientServices groups the services used by the terminal client.
type ClientServices struct {
	SessionManager SessionManager
	ContentBrowser ContentBrowser
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	sessions := NewSessionManager(localStore.TokenStore, serverAdapter, logger)

	return &ClientServices{
		SessionManager: sessions,
		ContentBrowser: NewContentBrowser(serverAdapter, sessions, models.DefaultEmptyMessages(), logger),
	}
}
