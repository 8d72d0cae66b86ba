// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// server and the client.
//
// Struct tags:
//   - envPrefix — prefix applied to nested env lookups (caarlos0/env).
//   - env       — environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, version and log settings.
	App App `envPrefix:"APP_"`

	// Storage holds the database, local file and S3 settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Cache holds the optional Redis session cache settings.
	Cache Cache `envPrefix:"CACHE_"`

	// Server holds the listening addresses of the HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the endpoints the client talks to.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Client holds settings of the terminal client's local state.
	Client Client `envPrefix:"CLIENT_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// TokenSignKey signs and verifies session JWTs. Must be kept secret.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of a session and of its token.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is reported by /api/version when no build version is linked in.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the persistence backends.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Files Files `envPrefix:"FILES_"`
	S3    S3    `envPrefix:"S3_"`
}

// DB holds the PostgreSQL connection settings.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files configures the filesystem upload store used when no S3 bucket is set.
type Files struct {
	// Dir is where uploaded files are written.
	// Env: STORAGE_FILES_DIR
	Dir string `env:"DIR"`

	// PublicBaseURL prefixes object keys to build file URLs.
	// Env: STORAGE_FILES_PUBLIC_BASE_URL
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`
}

// S3 configures the S3-compatible upload store.
type S3 struct {
	Bucket          string `env:"BUCKET"`
	Region          string `env:"REGION"`
	Endpoint        string `env:"ENDPOINT"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
	PublicBaseURL   string `env:"PUBLIC_BASE_URL"`
}

// Enabled reports whether uploads should go to S3.
func (s S3) Enabled() bool {
	return s.Bucket != ""
}

// Cache configures the verified-session cache.
type Cache struct {
	// RedisURL is a redis:// URL. Empty disables caching.
	// Env: CACHE_REDIS_URL
	RedisURL string `env:"REDIS_URL"`
}

// Server holds network and timeout settings for inbound transports.
type Server struct {
	// HTTPAddress is the host:port of the HTTP server.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the host:port of the gRPC health server. Empty disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSOrigins lists the allowed origins; "*" allows any.
	// Env: SERVER_CORS_ORIGINS (comma separated)
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

// Adapter holds the client's view of the remote services.
type Adapter struct {
	// AuthURL is the full URL of the auth endpoint.
	// Env: ADAPTER_AUTH_URL
	AuthURL string `env:"AUTH_URL"`

	// ContentURL is the full URL of the content endpoint.
	// Env: ADAPTER_CONTENT_URL
	ContentURL string `env:"CONTENT_URL"`

	// RequestTimeout bounds outbound requests. Zero means no timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client holds the terminal client's local settings.
type Client struct {
	// DSN is the SQLite file holding the persisted token.
	// Env: CLIENT_DSN
	DSN string `env:"DSN"`

	// LogFile is where the client writes its logs. Empty means a "logs" file
	// next to the executable.
	// Env: CLIENT_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Workers holds background job settings.
type Workers struct {
	// SessionCleanupInterval is how often expired sessions are purged.
	// Env: WORKERS_SESSION_CLEANUP_INTERVAL
	SessionCleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL"`
}

// GetStructuredConfig loads and validates the server configuration from the
// environment, os.Args and the optional JSON file.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := load(os.Args[1:])
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func load(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
