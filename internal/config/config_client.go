// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	Version  string
	LogLevel string
	LogFile  string
}

// ClientAdapter holds the endpoints used by the client transport layer.
type ClientAdapter struct {
	AuthURL    string
	ContentURL string
	// RequestTimeout is zero when requests should not time out.
	RequestTimeout time.Duration
}

// ClientStorage holds the local SQLite settings.
type ClientStorage struct {
	DSN string
}

// ClientConfig is the client's view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig loads the merged configuration and maps only the fields the
// terminal client uses. Server-only settings are not validated here.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := load(os.Args[1:])
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps cfg to a [ClientConfig] without validating it.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Version:  cfg.App.Version,
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.Client.LogFile,
		},
		Adapter: ClientAdapter{
			AuthURL:        cfg.Adapter.AuthURL,
			ContentURL:     cfg.Adapter.ContentURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DSN: cfg.Client.DSN,
		},
	}
}
