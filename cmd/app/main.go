package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deliverycost/cmd"
	"deliverycost/internal/obs"

	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := obs.NewLogger(configs.LogFormat, configs.LogLevel, os.Stdout)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app, err := cmd.NewCompositionRoot(configs, logger, registry)
	if err != nil {
		logger.Fatal().Err(err).Msg("build composition root")
	}

	startWebServer(app, configs.HTTPAddr(), logger)
}

func startWebServer(app *cmd.CompositionRoot, addr string, logger zerolog.Logger) {
	e, err := app.CreateRouter()
	if err != nil {
		logger.Fatal().Err(err).Msg("build router")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Str("addr", addr).Msg("http_server_started")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http server shutdown")
	}
	logger.Info().Msg("http_server_stopped")
}
