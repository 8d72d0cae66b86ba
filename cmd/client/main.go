// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/digiplay/dineo/internal/adapter"
	"github.com/digiplay/dineo/internal/client"
	"github.com/digiplay/dineo/internal/config"
	"github.com/digiplay/dineo/internal/logger"
	"github.com/digiplay/dineo/internal/service"
	"github.com/digiplay/dineo/internal/store"
	"github.com/digiplay/dineo/internal/tui"
	"github.com/digiplay/dineo/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("dineo-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("dineo-client", cfg.App.LogFile)
	logger.SetLevel(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if closeErr := localStorage.Close(); closeErr != nil {
			log.Err(closeErr).Msg("close local storage")
		}
	}()

	services := service.NewClientServices(localStorage, serverAdapter, log)

	app, err := client.NewApp(services, tui.New(services, buildInfo, log), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version())
	fmt.Printf("Build date: %s\n", info.Date())
	fmt.Printf("Build commit: %s\n", info.Commit())
}
