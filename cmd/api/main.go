// Package main is the entry point for the hotel admin API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pkordes/hotel-admin/backend/internal/config"
	"github.com/pkordes/hotel-admin/backend/internal/handler"
	"github.com/pkordes/hotel-admin/backend/internal/middleware"
	"github.com/pkordes/hotel-admin/backend/internal/repo"
	"github.com/pkordes/hotel-admin/backend/internal/service"
	"github.com/pkordes/hotel-admin/backend/internal/session"
)

func main() {
	// --- Config -----------------------------------------------------------
	if err := config.LoadDotEnv(".env"); err != nil {
		slog.Error("reading .env", "error", err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
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

	// --- Store ------------------------------------------------------------
	// One handle for the whole process, injected into the access layer.
	openCtx, cancelOpen := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := repo.Open(openCtx, cfg)
	cancelOpen()
	if err != nil {
		slog.Error("failed to open document store", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("document store ready", "backend", store.Backend)

	// --- Services ---------------------------------------------------------
	var collections service.Collections = service.NewCollectionService(store.Documents, logger)
	if cfg.ErrorPolicy == config.PolicyLenient {
		collections = service.NewLenient(collections, logger)
	}
	slog.Info("error policy", "policy", cfg.ErrorPolicy)

	deps := handler.Deps{
		Collections: collections,
		Users:       service.NewUserService(collections),
		Bookings:    service.NewBookingService(collections),
		Export:      service.NewExportService(collections),
		Dashboard:   service.NewDashboardService(collections, cfg.Collections),
		Allowed:     cfg.Collections,
		Logger:      logger,
	}

	if cfg.AuthEnabled() {
		gate := session.New(cfg.AdminEmail, cfg.AdminPasswordHash, cfg.SessionTTL)
		unsubscribe := gate.Subscribe(func(ev session.Event) {
			logger.Info("session event", "kind", ev.Kind, "email", ev.Email)
		})
		defer unsubscribe()
		deps.Sessions = gate
	} else {
		slog.Warn("ADMIN_EMAIL not set: sign-in is disabled and every route is open")
	}

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body limit.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/", handler.NewServer(deps).Routes())

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

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

	// In-flight requests get up to 15 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		return
	}
	slog.Info("server stopped")
}
