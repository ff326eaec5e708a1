package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripsketch/config"
	"tripsketch/handlers"
	"tripsketch/logging"
	"tripsketch/services"
	"tripsketch/store"
	"tripsketch/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file (ignored in production where env vars are set directly)
	envErr := godotenv.Load()

	cfg := config.Load()

	logger, err := logging.New(cfg.Release(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Debug("no .env file found, using environment variables")
	}

	if cfg.Release() {
		gin.SetMode(gin.ReleaseMode)
	}

	tmpl, err := web.Templates()
	if err != nil {
		logger.Fatal("failed to load templates", zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery(), logging.Middleware(logger))
	r.SetHTMLTemplate(tmpl)

	// Trusted proxies (deployments sit behind a proxy)
	if err := r.SetTrustedProxies([]string{"0.0.0.0/0"}); err != nil {
		logger.Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	st := store.New(cfg.MaxSessions)
	planner := services.NewPlanner(cfg.PlanLatency, logger)
	handlers.New(st, planner, logger, cfg.CookieSecure).Routes(r)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("tripsketch starting",
			zap.String("port", cfg.Port),
			zap.Duration("plan_latency", cfg.PlanLatency),
			zap.Strings("allowed_origins", cfg.AllowedOrigins))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
