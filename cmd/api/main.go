package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cardinal-capital/club-system/internal/api"
	"github.com/cardinal-capital/club-system/internal/core/domain"
	"github.com/cardinal-capital/club-system/internal/core/service"
	mongodb "github.com/cardinal-capital/club-system/internal/infrastructure/db/mongo"
	redisdb "github.com/cardinal-capital/club-system/internal/infrastructure/db/redis"
	"github.com/cardinal-capital/club-system/internal/infrastructure/marketdata"
	"github.com/cardinal-capital/club-system/internal/infrastructure/scheduler"
	"github.com/cardinal-capital/club-system/internal/pkg/config"
	"github.com/cardinal-capital/club-system/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("could not ensure user indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// Holdings are assembled here rather than in the router because the
	// cron refresher shares the same service instance.
	quotes := redisdb.NewQuoteCache(
		rdb,
		marketdata.NewClient(cfg.Market.BaseURL, cfg.Market.APIKey),
		cfg.Market.CacheTTL,
	)
	holdings := service.NewHoldingsService(mongodb.NewHoldingRepository(db), quotes, log)

	refresher, err := scheduler.NewRefresher(cfg.Market.RefreshCron, holdings, log)
	if err != nil {
		log.Fatal().Err(err).Str("cron", cfg.Market.RefreshCron).Msg("invalid refresh schedule")
	}
	refresher.Start()
	defer refresher.Stop()

	e, err := api.NewRouter(api.RouterConfig{
		DB:          db,
		Redis:       rdb,
		JWTSecret:   cfg.JWTSecret,
		Permissions: domain.DefaultPermissions(),
		Holdings:    holdings,
		Logger:      log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("router assembly failed")
	}

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
