package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/unstakeportal/portal-api-service/cmd/portal-api-service/cli"
	"github.com/unstakeportal/portal-api-service/internal/api"
	"github.com/unstakeportal/portal-api-service/internal/chain/ethereum"
	"github.com/unstakeportal/portal-api-service/internal/clients"
	"github.com/unstakeportal/portal-api-service/internal/config"
	"github.com/unstakeportal/portal-api-service/internal/db/model"
	"github.com/unstakeportal/portal-api-service/internal/observability/metrics"
	"github.com/unstakeportal/portal-api-service/internal/observability/refresher"
	"github.com/unstakeportal/portal-api-service/internal/queue"
	"github.com/unstakeportal/portal-api-service/internal/services"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("failed to load .env file")
	}
}

func main() {
	ctx := context.Background()

	// setup cli commands and flags
	if err := cli.Setup(); err != nil {
		log.Fatal().Err(err).Msg("error while setting up cli")
	}

	// load config
	cfgPath := cli.GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	err = model.Setup(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up portal db model")
	}

	gateway, err := ethereum.New(&cfg.Chain)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up chain gateway")
	}

	publisher, err := queue.New(&cfg.Queue)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up event publisher")
	}
	defer publisher.Close()

	externalClients := clients.New(cfg)

	services, err := services.New(ctx, cfg, gateway, publisher, externalClients)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up portal services layer")
	}

	if err := refresher.StartSessionRefreshCron(ctx, services, cfg.Server.RefreshInterval); err != nil {
		log.Fatal().Err(err).Msg("error while starting session refresh cron")
	}

	apiServer, err := api.New(ctx, cfg, services)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up portal api service")
	}
	if err = apiServer.Start(); err != nil {
		log.Fatal().Err(err).Msg("error while starting portal api service")
	}
}
