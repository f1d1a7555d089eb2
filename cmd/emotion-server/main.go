// cmd/emotion-server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	emotiondetector "emotion-detector/internal/analysis/emotion-detector"
	"emotion-detector/internal/common/config"
	"emotion-detector/internal/common/logger"
	"emotion-detector/internal/common/observability"
	"emotion-detector/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog, err := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting emotion detector...", zap.String("config", cfg.String()))

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	classifierCfg := emotiondetector.ConfigFrom(cfg.Classifier)
	classifier := emotiondetector.NewClassifier(classifierCfg, log.With(map[string]interface{}{
		"component": "classifier",
	}))
	zapLog.Info("Emotion classifier configured",
		zap.String("endpoint", classifierCfg.Endpoint),
		zap.String("modelId", classifierCfg.ModelID),
		zap.Duration("timeout", classifierCfg.Timeout),
	)

	srv, err := server.NewServer(cfg, classifier, obs, log.With(map[string]interface{}{
		"component": "http",
	}))
	if err != nil {
		zapLog.Fatal("server init failed", zap.Error(err))
	}

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down HTTP server", zap.Error(err))
	}

	zapLog.Info("Emotion detector stopped gracefully")
}
