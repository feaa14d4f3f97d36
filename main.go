package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"debt-planner/config"
	httpLayer "debt-planner/http"
	"debt-planner/repository"
	"debt-planner/service"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Fatal("failed to load config", zap.String("path", *configPath), zap.Error(err))
		}
		logger.Info("no config file, using defaults", zap.String("path", *configPath))
		cfg = config.DefaultConfig()
	}

	var accountRepo repository.AccountRepository
	if cfg.Postgres.DSN != "" {
		pgRepo, err := repository.NewAccountRepositoryPostgres(cfg.Postgres.DSN)
		if err != nil {
			logger.Fatal("failed to connect to postgres", zap.Error(err))
		}
		defer pgRepo.Close()
		accountRepo = pgRepo
		logger.Info("account storage: postgres")
	} else {
		accountRepo = repository.NewAccountRepositoryMemory()
		logger.Info("account storage: in-memory")
	}

	var cache repository.CacheRepository
	if cfg.Redis.Addr != "" {
		cache = repository.NewRedisCache(cfg.Redis.Addr, cfg.RedisTTL())
		logger.Info("comparison cache: redis", zap.String("addr", cfg.Redis.Addr))
	} else {
		cache = repository.NewMemoryCache()
		logger.Info("comparison cache: in-memory")
	}

	plannerService := service.NewPlannerService(cache, logger, service.Options{
		InterestThreshold:        cfg.Engine.InterestThreshold,
		TimeSavedThresholdMonths: cfg.Engine.TimeSavedThresholdMonths,
		MaxSimulationMonths:      cfg.Engine.MaxSimulationMonths,
		LegacyPooling:            cfg.Engine.LegacyPooling,
	})

	plannerHandler := httpLayer.NewPlannerHandler(plannerService, accountRepo)
	accountHandler := httpLayer.NewAccountHandler(accountRepo)

	rateLimiter := httpLayer.NewRateLimiter(30, time.Minute)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/plan/simulate",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(plannerHandler.Simulate),
		),
	)
	mux.Handle(
		"/plan/compare",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(plannerHandler.Compare),
		),
	)
	mux.Handle(
		"/plan/compare-stored",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(plannerHandler.CompareStored),
		),
	)
	mux.Handle(
		"/plan/project",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(plannerHandler.Project),
		),
	)
	mux.Handle(
		"/plan/allocate",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(plannerHandler.Allocate),
		),
	)
	mux.Handle(
		"/accounts",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(accountHandler.Accounts),
		),
	)

	server := &http.Server{
		Addr:         cfg.ServerAddr(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", cfg.ServerAddr()))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("server failed to start", zap.Error(err))
		return
	case <-quit:
		logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("error during server shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
