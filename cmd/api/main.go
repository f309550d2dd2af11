// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Shelfmark HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the catalog: PostgreSQL (migrated and seeded) or the embedded seed in memory.
//  4. Connect to Redis for remote detail caching, when configured.
//  5. Build the remote client and searcher, when configured.
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/shelfmark/internal/api"
	"github.com/taibuivan/shelfmark/internal/media"
	"github.com/taibuivan/shelfmark/internal/platform/config"
	"github.com/taibuivan/shelfmark/internal/platform/constants"
	"github.com/taibuivan/shelfmark/internal/platform/middleware"
	"github.com/taibuivan/shelfmark/internal/platform/migration"
	pgstore "github.com/taibuivan/shelfmark/internal/platform/postgres"
	redisstore "github.com/taibuivan/shelfmark/internal/platform/redis"
	"github.com/taibuivan/shelfmark/internal/platform/sec"
	"github.com/taibuivan/shelfmark/internal/remote"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("database", cfg.HasDatabase()),
		slog.Bool("cache", cfg.HasCache()),
		slog.Bool("remote", cfg.HasRemote()),
		slog.Bool("auth", cfg.HasAuth()),
	)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	var health api.HealthDependencies

	// ── 3. Catalog ────────────────────────────────────────────────────────
	seed, err := media.SeedCatalog()
	must(log, err, "decode seed catalog")

	var repository media.Repository
	if cfg.HasDatabase() {
		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing_postgres_pool")
			pool.Close()
		}()

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		postgresRepository := media.NewPostgresRepository(pool)
		inserted, err := postgresRepository.Seed(startupCtx, seed)
		must(log, err, "seed catalog")
		if inserted > 0 {
			log.Info("catalog_seeded", slog.Int("items", inserted))
		}

		repository = postgresRepository
		health.CheckDatabase = func(ctx context.Context) error { return pgstore.Ping(ctx, pool) }
	} else {
		log.Warn("catalog_in_memory", slog.Int("items", len(seed)))
		repository = media.NewMemoryRepository(seed)
	}

	// ── 4. Redis ──────────────────────────────────────────────────────────
	var rdb *goredis.Client
	if cfg.HasCache() {
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_error", slog.Any("error", cerr))
			}
		}()
		health.CheckCache = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
	}

	// ── 5. Remote Service ─────────────────────────────────────────────────
	var (
		forwarder     media.ReviewForwarder
		searchHandler *remote.Handler
	)
	if cfg.HasRemote() {
		var options []remote.Option
		if rdb != nil {
			options = append(options, remote.WithDetailCache(remote.NewRedisDetailCache(rdb, cfg.RemoteCacheTTL)))
		}

		client, err := remote.NewClient(cfg.RemoteAPIURL, cfg.RemoteTimeout, log, options...)
		must(log, err, "build remote client")

		forwarder = client
		searchHandler = remote.NewHandler(client, remote.NewSearcher(client))
	}

	// ── 6. Auth ───────────────────────────────────────────────────────────
	var (
		verifier    middleware.TokenVerifier
		reviewGuard func(http.Handler) http.Handler
	)
	if cfg.HasAuth() {
		tokenService, err := sec.NewVerifier(cfg.JWTPubKeyPath, constants.AuthIssuer)
		must(log, err, "load jwt public key")
		verifier = tokenService
		reviewGuard = middleware.RequireAuth
	}

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(health, log)
	service := media.NewService(repository, forwarder, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Media:     media.NewHandler(service, reviewGuard),
		Search:    searchHandler,
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, verifier, handlers)

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// newLogger builds the JSON logger and installs it as the default.
func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
