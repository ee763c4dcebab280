package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"agriedu/config"
	"agriedu/pkg/frontend"
	"agriedu/pkg/logger"
)

func main() {
	cfg := config.Load()
	logger.Init(config.ServiceName+" frontend", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e := frontend.New(cfg.FrontendDir)
	e.HidePort = true

	go func() {
		log.Info().Str("port", cfg.FrontendPort).Str("root", cfg.FrontendDir).Msg("serving frontend")
		if err := e.Start(":" + cfg.FrontendPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("frontend stopped")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
