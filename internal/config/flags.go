// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args into a partial config.
//
// Flags:
//
//	-a                 HTTP server address host:port
//	-grpc-address      gRPC health server address host:port
//	-d                 PostgreSQL DSN
//	-f                 upload directory for the filesystem store
//	-c / -config       JSON config file path
//	-token-sign-key    token signing key
//	-token-issuer      token issuer
//	-token-duration    session lifetime (e.g. 720h)
//	-request-timeout   server request timeout
//	-redis-url         Redis session cache URL
//	-s3-bucket         S3 bucket for uploads
//	-s3-region         S3 region
//	-s3-endpoint       S3-compatible endpoint (MinIO)
//	-cors-origins      comma-separated allowed origins
//	-auth-url          client: auth endpoint URL
//	-content-url       client: content endpoint URL
//	-adapter-timeout   client: request timeout, 0 for none
//	-client-dsn        client: local SQLite file
//	-log-file          client: log file path
//	-log-level         log level
//	-cleanup-interval  expired-session cleanup interval
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("dineo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress, grpcServerAddress NetAddress
	var (
		databaseDSN, filesDir, jsonConfigPath          string
		tokenSignKey, tokenIssuer                      string
		redisURL, s3Bucket, s3Region, s3Endpoint, cors string
		authURL, contentURL, clientDSN, logFile, level string
		tokenDuration, requestTimeout, adapterTimeout  time.Duration
		cleanupInterval                                time.Duration
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&filesDir, "f", "", "Upload directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Session lifetime (e.g., 720h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&redisURL, "redis-url", "", "Redis URL for the session cache")
	fs.StringVar(&s3Bucket, "s3-bucket", "", "S3 bucket")
	fs.StringVar(&s3Region, "s3-region", "", "S3 region")
	fs.StringVar(&s3Endpoint, "s3-endpoint", "", "S3 endpoint")
	fs.StringVar(&cors, "cors-origins", "", "Comma-separated allowed origins")
	fs.StringVar(&authURL, "auth-url", "", "Auth endpoint URL")
	fs.StringVar(&contentURL, "content-url", "", "Content endpoint URL")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout")
	fs.StringVar(&clientDSN, "client-dsn", "", "Client SQLite file")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&level, "log-level", "", "Log level")
	fs.DurationVar(&cleanupInterval, "cleanup-interval", 0, "Expired session cleanup interval")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LogLevel:      level,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Files: Files{Dir: filesDir},
			S3: S3{
				Bucket:   s3Bucket,
				Region:   s3Region,
				Endpoint: s3Endpoint,
			},
		},
		Cache: Cache{RedisURL: redisURL},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			CORSOrigins:    splitList(cors),
		},
		Adapter: Adapter{
			AuthURL:        authURL,
			ContentURL:     contentURL,
			RequestTimeout: adapterTimeout,
		},
		Client: Client{
			DSN:     clientDSN,
			LogFile: logFile,
		},
		Workers:      Workers{SessionCleanupInterval: cleanupInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
