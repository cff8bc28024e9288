package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/digitalnycagency/seo-audit-api/internal/adapter/httpclient"
	"github.com/digitalnycagency/seo-audit-api/internal/adapter/postgres"
	redis_adapter "github.com/digitalnycagency/seo-audit-api/internal/adapter/redis"
	"github.com/digitalnycagency/seo-audit-api/internal/delivery/http/handler"
	"github.com/digitalnycagency/seo-audit-api/internal/delivery/http/router"
	"github.com/digitalnycagency/seo-audit-api/internal/repository"
	"github.com/digitalnycagency/seo-audit-api/internal/usecase"
	"github.com/digitalnycagency/seo-audit-api/pkg/config"
	"github.com/digitalnycagency/seo-audit-api/pkg/logger"
	"github.com/digitalnycagency/seo-audit-api/pkg/metrics"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		panic("could not load config: " + err.Error())
	}

	// --- Logger ---
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic("could not build logger: " + err.Error())
	}
	defer log.Sync()

	// --- Metrics ---
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// --- Audit history (optional) ---
	ctx := context.Background()
	var history []repository.AuditHistoryRepository

	if cfg.PostgresURL != "" {
		dbpool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			log.Fatal("unable to connect to database", zap.Error(err))
		}
		defer dbpool.Close()

		pgRepo := postgres.NewAuditHistoryRepo(dbpool)
		if err := pgRepo.EnsureSchema(ctx); err != nil {
			log.Fatal("unable to prepare audit history schema", zap.Error(err))
		}
		history = append(history, pgRepo)
		log.Info("PostgreSQL audit history enabled")
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal("unable to connect to redis", zap.Error(err))
		}
		history = append(history, redis_adapter.NewAuditHistoryRepo(rdb, cfg.HistoryMaxEntries))
		log.Info("Redis audit history enabled", zap.Int64("max_entries", cfg.HistoryMaxEntries))
	}

	// --- Use Cases ---
	auditor := usecase.NewAuditor(
		httpclient.NewPageFetcher(cfg.UserAgent, cfg.FetchTimeout()),
		httpclient.NewLinkChecker(cfg.LinkCheckTimeout()),
		m,
		log,
		history...,
	)

	// --- HTTP Servers ---
	apiHandler := handler.NewHandler(auditor, log)

	// Audits block for the sum of all link checks, so no write timeout.
	server := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Port,
		Handler:           router.New(apiHandler, m, log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	var opsServer *http.Server
	if cfg.MetricsAddr != "" {
		opsServer = &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           router.NewOps(apiHandler, reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.Info("starting ops server", zap.String("addr", cfg.MetricsAddr))
			if err := opsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal("could not start ops server", zap.Error(err))
			}
		}()
	}

	go func() {
		log.Info("starting server", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("could not listen on port", zap.String("port", cfg.Port), zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()

	if opsServer != nil {
		if err := opsServer.Shutdown(shutdownCtx); err != nil {
			log.Error("ops server forced to shutdown", zap.Error(err))
		}
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exiting")
}
