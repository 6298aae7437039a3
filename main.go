package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmarquezl/aurora-rrhh/internal/config"
	"github.com/dmarquezl/aurora-rrhh/internal/handler"
	"github.com/dmarquezl/aurora-rrhh/internal/metrics"
	"github.com/dmarquezl/aurora-rrhh/internal/repository/sqlite"
	"github.com/dmarquezl/aurora-rrhh/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/cors"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := config.MustLoad()

	db, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	m := metrics.New(registry)

	// Allow a burst of 5 login attempts per client, refilling one every 6s.
	loginLimiter := service.NewTokenBucket(1.0/6.0, 5)
	defer loginLimiter.Stop()

	deps := handler.Deps{
		Auth:         service.NewAuthService(db.Users(), cfg.JWTSecret, cfg.BcryptCost),
		Empleados:    service.NewEmpleadoService(db.Empleados()),
		Estadisticas: service.NewEstadisticasService(),
		LoginLimiter: loginLimiter,
		Metrics:      m,
		Registry:     registry,
		CookieSecure: cfg.CookieSecure,
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, deps)

	// The frontend runs on its own origin and sends the auth cookie.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler.SecurityHeaders(corsHandler.Handler(mux)),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
