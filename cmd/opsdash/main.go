package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/crewbase/opsdash/internal/api"
	"github.com/crewbase/opsdash/internal/infrastructure/config"
	"github.com/crewbase/opsdash/internal/infrastructure/remote"
	"github.com/crewbase/opsdash/pkg/logger"
)

func main() {
	// A missing .env file is fine; containers inject the environment
	// directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
		File:   cfg.Log.File,
	})

	store, err := remote.New(remote.Config{
		BaseURL:            cfg.Remote.BaseURL,
		Token:              cfg.Remote.APIToken,
		MinRequestInterval: cfg.Remote.MinRequestInterval,
		MaxRetries:         cfg.Remote.MaxRetries,
		RetryDelay:         cfg.Remote.RetryDelay,
		BreakerEnabled:     cfg.Remote.BreakerEnabled,
		HTTPClient:         &http.Client{Timeout: cfg.Remote.Timeout},
		Logger:             log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("remote store client")
	}

	e := api.NewRouter(store, cfg.JWTSecret, log)

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("env", cfg.Env).
			Msg("opsdash API starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
