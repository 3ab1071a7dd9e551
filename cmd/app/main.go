package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/CropCalc_Go/internal/bootstrap"
	"github.com/osse101/CropCalc_Go/internal/catalog"
	"github.com/osse101/CropCalc_Go/internal/config"
	"github.com/osse101/CropCalc_Go/internal/metrics"
	"github.com/osse101/CropCalc_Go/internal/server"
	"github.com/osse101/CropCalc_Go/internal/session"
)

const shutdownTimeout = 10 * time.Second

// @title CropCalc API
// @version 1.0
// @description Crop profit estimator: catalog, quality odds, stateless estimates and estimator sessions.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Load reads .env, so the schema check runs after it
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx := context.Background()
	data, err := catalog.NewLoader().Load(ctx, cfg.CropsPath, cfg.ProbabilitiesPath)
	if err != nil {
		slog.Error("Failed to load reference data", "error", err)
		os.Exit(1)
	}
	if err := data.CheckProbabilities(); err != nil {
		slog.Warn("Probability table looks wrong", "error", err)
	}
	metrics.RecordReferenceData(data)

	events, err := bootstrap.InitializeEventSystem()
	if err != nil {
		slog.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}

	sessions := session.NewService(data, events.Bus, session.StoreConfig{
		Size: cfg.SessionCacheSize,
		TTL:  cfg.SessionTTL,
	})
	metrics.SetActiveSessionsSource(sessions.ActiveSessions)

	srv := server.NewServer(cfg, server.Dependencies{
		Data:     data,
		Sessions: sessions,
		Hub:      events.Hub,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		Hub:    events.Hub,
	})
}
