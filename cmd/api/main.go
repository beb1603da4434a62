// Package main is the entry point for the TripFlow API server.
// Its sole responsibility is wiring dependencies together and starting the
// server. No business logic belongs here.
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
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for goose
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/travelflow/tripflow/internal/assist"
	"github.com/travelflow/tripflow/internal/cache"
	"github.com/travelflow/tripflow/internal/config"
	"github.com/travelflow/tripflow/internal/geocode"
	"github.com/travelflow/tripflow/internal/handler"
	"github.com/travelflow/tripflow/internal/middleware"
	"github.com/travelflow/tripflow/internal/observability"
	"github.com/travelflow/tripflow/internal/rates"
	"github.com/travelflow/tripflow/internal/repo"
	"github.com/travelflow/tripflow/internal/service"
	"github.com/travelflow/tripflow/internal/weather"
	"github.com/travelflow/tripflow/migrations"
)

// maxRequestBody caps inbound request bodies. Trip snapshots with a full
// season of day plans stay well under a megabyte; imports get headroom.
const maxRequestBody = 5 << 20

func main() {
	// --- Config -----------------------------------------------------------
	// .env is a development convenience; in production the variables come
	// from the environment and the file simply does not exist.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	if err := runMigrations(cfg.DatabaseURL); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// --- External collaborators -------------------------------------------
	var apiCache *cache.Cache
	if cfg.RedisAddr != "" {
		apiCache = cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		slog.Info("external-API cache enabled", "addr", cfg.RedisAddr)
	}
	// The clients take their own cache interfaces; a disabled cache must be
	// a true nil, not a nil *cache.Cache boxed in an interface.
	var (
		ratesCache   rates.JSONCache
		geocodeCache geocode.JSONCache
		weatherCache weather.JSONCache
	)
	if apiCache != nil {
		ratesCache, geocodeCache, weatherCache = apiCache, apiCache, apiCache
	}

	rateTable := rates.NewTable()
	ratesSvc := rates.NewService(rateTable, rates.NewClient(cfg.RatesBaseURL), ratesCache, cfg.CacheTTL, logger)
	geocoder := geocode.New(cfg.GeocodeBaseURL, geocodeCache, cfg.CacheTTL)
	forecaster := weather.New(cfg.WeatherBaseURL, weatherCache, cfg.CacheTTL)
	assistant := assist.New(cfg.AssistBaseURL, cfg.AssistAPIKey, cfg.AssistModel)

	// Warm the rate table before accepting traffic; a failure just leaves
	// the static fallback rates in place.
	func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		ratesSvc.Refresh(ctx)
	}()

	// --- Services ---------------------------------------------------------
	tripRepo := repo.NewTripRepo(pool)
	agencyRepo := repo.NewAgencyRepo(pool)

	tripSvc := service.NewTripService(tripRepo)
	dashboardSvc := service.NewDashboardService(tripRepo)
	exportSvc := service.NewExportService(tripRepo)
	agencySvc := service.NewAgencyService(agencyRepo)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger →
	// Recoverer → CORS → body cap → metrics.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxRequestBody))
	r.Use(middleware.NewMetricsHandler())

	srvHandler := handler.NewServer(tripSvc, dashboardSvc, exportSvc, agencySvc, ratesSvc, geocoder, forecaster, assistant, logger)
	r.Mount("/", srvHandler.Routes())

	observability.Serve(cfg.MetricsAddr, logger)

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	// WriteTimeout leaves room for the PDF render and the fan-out weather
	// fetches, which can take several upstream round-trips.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
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

// runMigrations applies pending schema migrations. goose drives database/sql,
// so a short-lived pgx stdlib connection is opened alongside the pool.
func runMigrations(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	results, err := provider.Up(context.Background())
	if err != nil {
		return err
	}
	for _, res := range results {
		slog.Info("migration applied", "source", res.Source.Path, "duration", res.Duration)
	}
	return nil
}
