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

	"contact-relay-backend/config"
	_ "contact-relay-backend/docs" // Important for Swagger
	v1 "contact-relay-backend/internal/delivery/http/v1"
	"contact-relay-backend/internal/usecase"
	"contact-relay-backend/pkg/logger"
	"contact-relay-backend/pkg/redis"
	"contact-relay-backend/pkg/security"
	"contact-relay-backend/pkg/sheets"
)

// @title           Contact Relay API
// @version         1.0
// @description     Same-origin relay between the agency website's contact form and the spreadsheet web app.
// @host            localhost:3000
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	logger.Init(os.Getenv("LOG_LEVEL"))
	secLogger := security.InitSecurityLogger(security.Options{
		ServiceName: "contact-relay",
		Environment: environment(cfg),
		FilePath:    cfg.SecurityLogFile,
	})
	defer func() { _ = secLogger.Sync() }()

	// 3. Resolve the spreadsheet endpoint; the relay is useless without it
	endpoint, err := cfg.SheetsEndpoint()
	if err != nil {
		logger.Log.Error("Invalid spreadsheet configuration", "error", err)
		os.Exit(1)
	}
	logger.Log.Info("Using Google Sheets script", "script_id", endpoint.ScriptID)

	// 4. Setup Redis (optional, rate limiting falls back to memory)
	var redisProbe usecase.HealthProbe
	if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
		if !errors.Is(err, redis.ErrNotConfigured) {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
		}
	} else {
		redisProbe = redis.HealthCheck
		defer func() { _ = redis.Close() }()
	}

	// 5. Setup UseCases
	sheetsClient := sheets.NewClient(cfg.UpstreamTimeout)
	forwardUC := usecase.NewForwardUsecase(endpoint.ExecURL(), sheetsClient)
	healthUC := usecase.NewHealthUsecase(endpoint.ScriptID, redisProbe)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ForwardUC:         forwardUC,
		HealthUC:          healthUC,
		Endpoint:          endpoint,
		Config:            cfg,
		UpstreamTransport: upstreamTransport(cfg.UpstreamTimeout),
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("Relay listening",
			"addr", "http://localhost:"+cfg.Port,
			"relay", config.RelayPath,
			"direct_test", v1.DirectTestPath,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// upstreamTransport bounds the wait for response headers when a timeout is
// configured. Zero keeps http.DefaultTransport.
func upstreamTransport(timeout time.Duration) http.RoundTripper {
	if timeout <= 0 {
		return nil
	}
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.ResponseHeaderTimeout = timeout
	return t
}

func environment(cfg *config.Config) string {
	if cfg.Production {
		return "production"
	}
	return "development"
}
