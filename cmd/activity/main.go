package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gavraq/lifetrack/internal/pkg/config"
	"github.com/gavraq/lifetrack/internal/pkg/database"
	"github.com/gavraq/lifetrack/internal/pkg/logger"
	"github.com/gavraq/lifetrack/internal/pkg/middleware"
	natspkg "github.com/gavraq/lifetrack/internal/pkg/nats"
	nrpkg "github.com/gavraq/lifetrack/internal/pkg/newrelic"
	"github.com/gavraq/lifetrack/internal/pkg/places"
	"github.com/gavraq/lifetrack/internal/pkg/server"
	"github.com/gavraq/lifetrack/services/activity/gateway"
	"github.com/gavraq/lifetrack/services/activity/handler"
	"github.com/gavraq/lifetrack/services/activity/repository"
	"github.com/gavraq/lifetrack/services/activity/usecase"
)

func main() {
	configs := config.InitConfig("")

	nrApp, err := nrpkg.InitNewRelic(configs.NewRelic)
	if err != nil {
		log.Fatalf("Failed to initialize New Relic: %v", err)
	}

	appLogger, err := logger.NewZapLogger(logger.Config{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
	}, nrApp)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.SetGlobalLogger(appLogger)
	defer appLogger.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("failed to connect to Redis", logger.Err(err))
	}

	// Initialize Postgres client
	pgClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("failed to connect to Postgres", logger.Err(err))
	}

	// Initialize NATS client
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("failed to connect to NATS", logger.Err(err))
	}

	// Load the place registry
	registry, err := places.Load(configs.Places.File)
	if err != nil {
		logger.Fatal("failed to load place registry",
			logger.String("file", configs.Places.File),
			logger.Err(err))
	}
	logger.Info("place registry loaded",
		logger.Int("places", registry.Len()),
		logger.Int("skipped", registry.Skipped()))

	// Wire repositories, gateway, usecase and handlers
	pingRepo := repository.NewPingRepo(redisClient)
	sessionRepo := repository.NewSessionRepo(pgClient)
	activityGW := gateway.NewActivityGW(natsClient)
	activityUC := usecase.NewActivityUC(configs, registry, pingRepo, sessionRepo, activityGW)
	h := handler.NewHTTPHandler(activityUC, natsClient, configs)

	if err := h.InitNATSConsumers(); err != nil {
		logger.Fatal("failed to initialize NATS consumers", logger.Err(err))
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.RequestLoggerMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware())
	if nrApp != nil {
		e.Use(middleware.TransactionMiddleware(nrApp))
	}
	h.RegisterRoutes(e, redisClient, pgClient)

	srv := server.NewGracefulServer(e)
	if configs.Server.ShutdownTimeout > 0 {
		srv.SetShutdownTimeout(time.Duration(configs.Server.ShutdownTimeout) * time.Second)
	}
	srv.RegisterShutdownFunc(func(ctx context.Context) error {
		return redisClient.Close()
	})
	srv.RegisterShutdownFunc(func(ctx context.Context) error {
		return pgClient.Close()
	})
	srv.RegisterShutdownFunc(func(ctx context.Context) error {
		h.DrainNATSConsumers()
		natsClient.Close()
		return nil
	})

	if err := srv.Start(configs.Server.Port); err != nil {
		logger.Fatal("server terminated", logger.Err(err))
	}
}
