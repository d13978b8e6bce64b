package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/cinehub/rental-service/docs"
	"github.com/cinehub/rental-service/internal/api"
	"github.com/cinehub/rental-service/internal/infrastructure/config"
	mongodb "github.com/cinehub/rental-service/internal/infrastructure/db/mongo"
	redisdb "github.com/cinehub/rental-service/internal/infrastructure/db/redis"
	"github.com/cinehub/rental-service/internal/infrastructure/queue"
	"github.com/cinehub/rental-service/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Movie Rental API
// @version      1.0
// @description  REST backend for a movie-rental catalog.
//
// @securityDefinitions.apikey TokenAuth
// @in   header
// @name x-auth-token
func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet; a missing secret must still kill the process.
		os.Stderr.WriteString("FATAL: " + err.Error() + "\n")
		os.Exit(1)
	}

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

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	userRepo := mongodb.NewUserRepository(db)
	rentalRepo := mongodb.NewRentalRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes")
	}
	if err := rentalRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("rental indexes")
	}

	reconciler := queue.NewStockReconciler(0, mongodb.NewMovieRepository(db), log)
	reconciler.Start(ctx)

	e := api.NewRouter(db, rdb, cfg, log, reconciler)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("listening")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
