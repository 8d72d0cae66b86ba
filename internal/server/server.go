// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/digiplay/dineo/internal/config"
	"github.com/digiplay/dineo/internal/handler"
	"github.com/digiplay/dineo/internal/logger"
)

// shutdownTimeout bounds the graceful shutdown of all transports.
const shutdownTimeout = 15 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

	return servers, nil
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error

	// finish HTTP server
	if s.httpServer != nil {
		errs = append(errs, s.httpServer.Shutdown(ctx))
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		errs = append(errs, s.gRPCServer.Shutdown(ctx))
	}

	return errors.Join(errs...)
}

func (s *server) RunServer(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.listen(); err != nil {
			return err
		}
	}
	if s.gRPCServer != nil {
		if err := s.gRPCServer.listen(); err != nil {
			if s.httpServer != nil {
				s.httpServer.listener.Close()
			}
			return err
		}
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	serveErrs := make(chan error, 2)
	var wg sync.WaitGroup

	// launch all created servers
	if s.httpServer != nil {
		wg.Go(func() { serveErrs <- s.httpServer.RunServer() })
	}
	if s.gRPCServer != nil {
		wg.Go(func() { serveErrs <- s.gRPCServer.RunServer() })
	}

	// a transport that fails on its own stops the others too
	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serveErrs:
		if runErr != nil {
			s.logger.Err(runErr).Msg("server stopped unexpectedly")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	shutdownErr := s.Shutdown(shutdownCtx)
	wg.Wait()
	close(serveErrs)

	for err := range serveErrs {
		if runErr == nil {
			runErr = err
		}
	}

	s.logger.Info().Msg("server Shutdown gracefully")

	return errors.Join(runErr, shutdownErr)
}
