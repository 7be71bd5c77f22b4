// Package main is the entry point for the trip planner API server.
// Its sole responsibility is wiring dependencies together and starting the
// server. No business logic belongs here.
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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-retry"

	"github.com/plannerhq/backend/internal/config"
	"github.com/plannerhq/backend/internal/handler"
	"github.com/plannerhq/backend/internal/mail"
	"github.com/plannerhq/backend/internal/middleware"
	"github.com/plannerhq/backend/internal/repo"
	"github.com/plannerhq/backend/internal/service"
)

// maxInviteBody caps invite request bodies; they carry a single email address.
const maxInviteBody = 4 << 10 // 4 KiB

func main() {
	// --- Config -----------------------------------------------------------
	// A .env file is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog with a JSON handler writes machine-readable output suitable
	// for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately — the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic. Retried with
	// backoff so the API can start before Postgres in compose environments.
	backoff := retry.WithMaxRetries(5, retry.NewExponential(500*time.Millisecond))
	err = retry.Do(context.Background(), backoff, func(ctx context.Context) error {
		if err := pool.Ping(ctx); err != nil {
			slog.Warn("database not reachable yet", "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// --- Mailer -----------------------------------------------------------
	// SES when credentials are configured, log-only otherwise so local
	// development needs no AWS account.
	var mailer mail.Mailer
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		sesMailer, err := mail.NewSESMailer(context.Background(), cfg.AWSRegion, cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey)
		if err != nil {
			slog.Error("failed to create SES mailer", "error", err)
			os.Exit(1)
		}
		mailer = sesMailer
		slog.Info("using SES mailer", "region", cfg.AWSRegion)
	} else {
		mailer = mail.NewLogMailer(logger)
		slog.Warn("AWS credentials not set; emails will be logged, not delivered")
	}

	// --- Services ---------------------------------------------------------
	trips := repo.NewTripRepo(pool)
	participants := repo.NewParticipantRepo(pool)
	from := mail.Sender{Name: cfg.MailFromName, Address: cfg.MailFromAddress}
	links := service.Links{WebBaseURL: cfg.WebBaseURL, APIBaseURL: cfg.APIBaseURL}

	tripService := service.NewTripService(trips, participants)
	confirmationService := service.NewConfirmationService(trips, participants, mailer, from, links)
	inviteService := service.NewInviteService(trips, participants, mailer, from, links)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxInviteBody))

	srv := handler.NewServer(tripService, confirmationService, inviteService)
	r.Mount("/", srv.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	httpSrv := &http.Server{
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
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
