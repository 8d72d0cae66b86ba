// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
// Durations accept either Go duration strings ("30s") or nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
		LogLevel      string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			Dir           string `json:"dir"`
			PublicBaseURL string `json:"public_base_url"`
		} `json:"files,omitempty"`

		S3 struct {
			Bucket          string `json:"bucket"`
			Region          string `json:"region"`
			Endpoint        string `json:"endpoint"`
			AccessKeyID     string `json:"access_key_id"`
			SecretAccessKey string `json:"secret_access_key"`
			PublicBaseURL   string `json:"public_base_url"`
		} `json:"s3,omitempty"`
	} `json:"storage,omitempty"`

	Cache struct {
		RedisURL string `json:"redis_url"`
	} `json:"cache,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		CORSOrigins    []string `json:"cors_origins"`
	} `json:"server,omitempty"`

	Adapter struct {
		AuthURL        string   `json:"auth_url"`
		ContentURL     string   `json:"content_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Client struct {
		DSN     string `json:"dsn"`
		LogFile string `json:"log_file"`
	} `json:"client,omitempty"`

	Workers struct {
		SessionCleanupInterval Duration `json:"session_cleanup_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  j.App.TokenSignKey,
			TokenIssuer:   j.App.TokenIssuer,
			TokenDuration: time.Duration(j.App.TokenDuration),
			Version:       j.App.Version,
			LogLevel:      j.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{DSN: j.Storage.DB.DSN},
			Files: Files{
				Dir:           j.Storage.Files.Dir,
				PublicBaseURL: j.Storage.Files.PublicBaseURL,
			},
			S3: S3{
				Bucket:          j.Storage.S3.Bucket,
				Region:          j.Storage.S3.Region,
				Endpoint:        j.Storage.S3.Endpoint,
				AccessKeyID:     j.Storage.S3.AccessKeyID,
				SecretAccessKey: j.Storage.S3.SecretAccessKey,
				PublicBaseURL:   j.Storage.S3.PublicBaseURL,
			},
		},
		Cache: Cache{RedisURL: j.Cache.RedisURL},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			GRPCAddress:    j.Server.GRPCAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
			CORSOrigins:    j.Server.CORSOrigins,
		},
		Adapter: Adapter{
			AuthURL:        j.Adapter.AuthURL,
			ContentURL:     j.Adapter.ContentURL,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
		},
		Client: Client{
			DSN:     j.Client.DSN,
			LogFile: j.Client.LogFile,
		},
		Workers: Workers{
			SessionCleanupInterval: time.Duration(j.Workers.SessionCleanupInterval),
		},
	}

	return cfg, nil
}

// Duration is a time.Duration that unmarshals from "1h"-style strings.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
