// Package main is the entry point for the FleetFlow API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sethvargo/go-retry"

	"github.com/fleetflow/fleetflow/backend/internal/config"
	"github.com/fleetflow/fleetflow/backend/internal/handler"
	"github.com/fleetflow/fleetflow/backend/internal/middleware"
	"github.com/fleetflow/fleetflow/backend/internal/repo"
	"github.com/fleetflow/fleetflow/backend/internal/service"
	"github.com/fleetflow/fleetflow/backend/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		slog.Error("invalid database url", "error", err)
		os.Exit(1)
	}
	poolCfg.MaxConns = cfg.DBPoolMax

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic. In container
	// setups the database often comes up a few seconds after the API, so
	// ping with exponential backoff instead of failing on the first try.
	backoff := retry.WithMaxRetries(5, retry.NewExponential(500*time.Millisecond))
	err = retry.Do(context.Background(), backoff, func(ctx context.Context) error {
		if err := pool.Ping(ctx); err != nil {
			slog.Warn("database not ready, retrying", "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// --- Migrations -------------------------------------------------------
	// goose drives database/sql, not pgx, so open a throwaway *sql.DB just
	// for schema bootstrap and close it before serving.
	if err := migrate(cfg.DatabaseURL); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database schema up to date")

	// --- Wiring -----------------------------------------------------------
	// Repos bind directly to the pool for single-statement operations; the
	// lifecycle engines go through TxManager so their row locks and writes
	// share one transaction.
	vehicles := repo.NewVehicleRepo(pool)
	drivers := repo.NewDriverRepo(pool)
	trips := repo.NewTripRepo(pool)
	maintenance := repo.NewMaintenanceRepo(pool)
	fuel := repo.NewFuelRepo(pool)
	txm := repo.NewTxManager(pool)

	srvHandler := handler.NewServer(
		service.NewVehicleService(vehicles),
		service.NewDriverService(drivers, trips),
		service.NewTripService(txm, trips, vehicles, drivers),
		service.NewMaintenanceService(txm, maintenance),
		service.NewFuelService(fuel, vehicles),
		service.NewFinanceService(vehicles, fuel, maintenance, trips),
		service.NewDashboardService(vehicles, drivers, trips),
	)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger →
	// Recoverer → CORS → Metrics → body limit.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMetrics())
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/", srvHandler.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// migrate applies all pending migrations embedded in the binary.
func migrate(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	_, err = provider.Up(context.Background())
	return err
}
