package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirpyerre/merch-store-api/internal/api"
	"github.com/sirpyerre/merch-store-api/internal/core/ports"
	"github.com/sirpyerre/merch-store-api/internal/infrastructure/config"
	redisdb "github.com/sirpyerre/merch-store-api/internal/infrastructure/db/redis"
	filestore "github.com/sirpyerre/merch-store-api/internal/infrastructure/store/file"
	"github.com/sirpyerre/merch-store-api/internal/infrastructure/store/mongostore"
	"github.com/sirpyerre/merch-store-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store ports.SnapshotStore
	switch cfg.Store.Driver {
	case "mongo":
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		store = mongostore.New(db)
	default:
		store = filestore.New(cfg.Store.Path)
	}

	if err := store.Initialize(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize store")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	dedup := redisdb.NewIdempotencyChecker(rdb)
	e := api.NewRouter(store, dedup, rdb, cfg.JWTSecret, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(":" + cfg.Port)
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Str("store_driver", cfg.Store.Driver).Msg("server started")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}
}
