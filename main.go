package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roi-agent/config"
	httpLayer "roi-agent/http"
	"roi-agent/logging"
	"roi-agent/repository"
	"roi-agent/service"
)

func main() {
	configPath := os.Getenv("ROI_AGENT_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logging.Sugar.Fatalw("failed to load config", "path", configPath, "error", err)
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Sugar.Fatalw("failed to initialize logging", "error", err)
	}
	defer logging.Sync()

	calcRepo := repository.NewCalculationRepositoryMemory()

	var cache repository.CacheRepository
	if cfg.Cache.Enabled {
		cache = repository.NewRedisCache(cfg.Cache.RedisAddr, cfg.Cache.TTL())
		logging.Sugar.Infow("redis cache enabled", "addr", cfg.Cache.RedisAddr)
	} else {
		cache = repository.NewMockCache()
	}

	metricsService := service.NewMetricsService(calcRepo, cache)
	scenarioHandler := httpLayer.NewScenarioHandler(metricsService)

	recommendationService := service.NewRecommendationService(metricsService, cfg.Thresholds)
	analysisHandler := httpLayer.NewAnalysisHandler(recommendationService)

	reportService := service.NewReportService(recommendationService)
	reportHandler := httpLayer.NewReportHandler(reportService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.RefillInterval())
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/project/metrics",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(scenarioHandler.ComputeScenarios),
		),
	)

	mux.Handle(
		"/project/analyze",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(analysisHandler.Analyze),
		),
	)

	mux.Handle(
		"/project/report",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(reportHandler.GenerateReport),
		),
	)

	mux.HandleFunc("/healthz", httpLayer.Healthz)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSec) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSec) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logging.Sugar.Infow("API listening", "addr", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logging.Sugar.Errorw("error starting server", "error", err)
		return
	case <-quit:
		logging.Sugar.Info("shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logging.Sugar.Errorw("error during server shutdown", "error", err)
	}

	logging.Sugar.Info("server exited")
}
