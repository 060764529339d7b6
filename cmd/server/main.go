package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anonto42/y2k-space/backend/internal/router"
	"github.com/anonto42/y2k-space/backend/pkg/config"
	"github.com/anonto42/y2k-space/backend/pkg/firebase"
	"github.com/anonto42/y2k-space/backend/pkg/logger"
	"github.com/anonto42/y2k-space/backend/pkg/monitoring"
	"github.com/anonto42/y2k-space/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger.InitLogger(cfg.LogLevel, cfg.LogFile, cfg.IsDevelopment())
	defer logger.Sync()

	monitoring.Init(prometheus.DefaultRegisterer)

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize databases", zap.Error(err))
	}
	defer db.CloseDB()

	ctx := context.Background()
	if err := router.Migrate(ctx, db, cfg); err != nil {
		logger.Log.Fatal("Failed to migrate", zap.Error(err))
	}

	// Initialize Firebase
	firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
	if err != nil {
		logger.Log.Fatal("Failed to initialize Firebase", zap.Error(err))
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()

	config.SetupMiddleware(e)
	router.SetupRoutes(e, db, cfg, firebaseApp.Verifier())

	metricsServer := &http.Server{
		Addr:              ":" + cfg.MetricsPort,
		Handler:           monitoring.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Log.Info("Metrics server listening", zap.String("port", cfg.MetricsPort))
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Metrics server stopped", zap.Error(err))
		}
	}()

	go func() {
		logger.Log.Info("Server listening", zap.String("port", cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("Server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server shutdown failed", zap.Error(err))
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Metrics server shutdown failed", zap.Error(err))
	}
	logger.Log.Info("Server exited")
}
