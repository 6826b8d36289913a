package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spacesedan/emotiflow/config"
	"github.com/spacesedan/emotiflow/internal/logging"
	"github.com/spacesedan/emotiflow/internal/monitoring"
	"github.com/spacesedan/emotiflow/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config.LoadEnv(config.AppEnv())
	logging.InitLogger(slog.LevelInfo)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("[Main] Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logging.InitLogger(cfg.SlogLevel())

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	detector, prober, cleanup, err := buildDetector(ctx, cfg)
	if err != nil {
		slog.Error("[Main] Failed to build detector", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	healthy := &atomic.Bool{}
	healthy.Store(true)
	go monitoring.MonitorDetectorHealth(ctx, cfg.HealthcheckInterval, detector.Name(), prober, healthy)

	router := server.SetupRouter(
		server.NewHandler(detector),
		server.NewHealthHandler(detector.Name(), healthy),
	)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("[Main] Listening",
			slog.String("addr", cfg.Addr()),
			slog.String("env", cfg.Env),
			slog.String("detector", detector.Name()),
			slog.Bool("cache", cfg.CacheEnabled))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	// Handle graceful shutdown
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stopChan:
		slog.Info("[Main] Shutting down server gracefully...")
	case err := <-serveErr:
		slog.Error("[Main] Server failed", slog.String("error", err.Error()))
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("[Main] Shutdown failed", slog.String("error", err.Error()))
	}
}
