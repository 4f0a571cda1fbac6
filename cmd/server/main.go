package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/demobank/banking-api/internal/api"
	"github.com/demobank/banking-api/internal/infrastructure/config"
	"github.com/demobank/banking-api/internal/infrastructure/db/mysql"
	"github.com/demobank/banking-api/internal/infrastructure/db/redis"
	"github.com/demobank/banking-api/internal/infrastructure/queue"
	"github.com/demobank/banking-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := mysql.Connect(ctx, mysql.Config{DSN: cfg.DB.DSN()})
	if err != nil {
		log.Fatal().Err(err).Msg("mysql connection failed")
	}
	defer db.Close()

	if err := mysql.Apply(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}

	if cfg.AdminEmail != "" {
		// Promote an already-registered admin account. New signups with this
		// email get the admin role directly.
		promoted, err := mysql.NewUserRepository(db).PromoteToAdmin(ctx, cfg.AdminEmail)
		if err != nil {
			log.Fatal().Err(err).Msg("admin promotion failed")
		}
		if promoted {
			log.Info().Str("email", cfg.AdminEmail).Msg("promoted admin account")
		}
	}

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	dispatcher := queue.NewLogDispatcher(0, mysql.NewLogRepository(db), log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, dispatcher, cfg.JWTSecret, cfg.AdminEmail, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
