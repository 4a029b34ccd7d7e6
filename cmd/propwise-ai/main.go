package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"

	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/propwise/propwise/pkg/auth"
	"github.com/propwise/propwise/pkg/billing"
	"github.com/propwise/propwise/pkg/config"
	"github.com/propwise/propwise/pkg/gateway"
	"github.com/propwise/propwise/pkg/observability"
	"github.com/propwise/propwise/pkg/provider"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := observability.NewLogger(cfg.Logging.Level, cfg.Logging.JSON, os.Stdout)

	// Session store
	var sessions auth.SessionStore
	var redisClient *redis.Client
	switch cfg.Auth.Mode {
	case config.ModeRedis:
		opts, err := redis.ParseURL(cfg.Auth.RedisURL)
		if err != nil {
			log.WithError(err).Fatal("invalid redis URL")
		}
		redisClient = redis.NewClient(opts)
		sessions = auth.NewRedisSessionStore(redisClient, cfg.Auth.SessionPrefix)
	default:
		log.Warn("static auth mode: all configured tokens resolve, for local development only")
		sessions = auth.NewStaticSessionStore(map[string]auth.Identity{
			"dev-token": {UserID: "dev-user", Email: "dev@propwise.local"},
		})
	}

	// Tier source
	var tiers billing.TierSource
	var db *sql.DB
	switch cfg.Billing.Mode {
	case config.ModePostgres:
		db, err = sql.Open("postgres", cfg.Billing.PostgresURL)
		if err != nil {
			log.WithError(err).Fatal("failed to open billing database")
		}
		tiers = billing.NewPostgresTierSource(db)
	default:
		tier := billing.Tier(cfg.Billing.StaticTier)
		if !tier.Valid() {
			log.WithField("tier", cfg.Billing.StaticTier).Fatal("invalid static tier")
		}
		log.WithField("tier", tier).Warn("static billing mode: every user gets the same tier")
		tiers = billing.NewStaticTierSource(tier)
	}

	// Model provider
	client := provider.NewOpenAIClient(provider.Config{
		APIKey:  cfg.Provider.APIKey,
		Model:   cfg.Provider.Model,
		BaseURL: cfg.Provider.BaseURL,
		Timeout: cfg.Provider.Timeout,
	}, log)
	if cfg.Provider.APIKey == "" {
		log.Warn("no provider API key configured: feature calls will fail until PROPWISE_PROVIDER_API_KEY is set")
	}

	metrics := observability.NewMetrics(prometheus.NewRegistry())
	dispatcher := gateway.NewDispatcher(sessions, tiers, client, log, metrics)
	server := gateway.NewServer(dispatcher, log)

	apiServer := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      server,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Health and metrics on a separate listener
	healthMux := http.NewServeMux()
	checker := observability.NewHealthChecker(db, redisClient)
	healthMux.HandleFunc("/healthz", checker.Liveness)
	healthMux.HandleFunc("/readyz", checker.Readiness)
	healthMux.Handle("/metrics", metrics.Handler())
	healthServer := &http.Server{
		Addr:    cfg.Server.Host + ":" + cfg.Server.HealthPort,
		Handler: healthMux,
	}

	shutdown := observability.NewShutdownManager(log, cfg.Server.ShutdownTimeout)
	shutdown.RegisterServer(apiServer)
	shutdown.RegisterServer(healthServer)
	if redisClient != nil {
		shutdown.RegisterFunc(func(_ context.Context) error { return redisClient.Close() })
	}
	if db != nil {
		shutdown.RegisterFunc(func(_ context.Context) error { return db.Close() })
	}

	go func() {
		log.WithField("addr", healthServer.Addr).Info("health server listening")
		if err := healthServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("health server failed")
		}
	}()

	go func() {
		log.WithField("addr", apiServer.Addr).Info("AI gateway listening")
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server failed")
		}
	}()

	shutdown.Wait()
}
