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
	"github.com/joho/godotenv"
	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/handler"
	"github.com/vaultpass/passgen/internal/middleware"
	"github.com/vaultpass/passgen/internal/repository"
	"github.com/vaultpass/passgen/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// The custom denylist needs MySQL; without it only the built-in list applies.
	var denylistRepo *repository.DenylistRepository
	if cfg.DatabaseDSN != "" {
		db, err := openDatabase(ctx, cfg.DatabaseDSN)
		if err != nil {
			slog.Warn("database unavailable, denylist routes disabled", "error", err)
		} else {
			defer db.Close()
			denylistRepo = repository.NewDenylistRepository(db)
		}
	}

	strengthService := service.NewStrengthService(denylistRepo, cfg.LegacyStrength)
	if err := strengthService.Reload(ctx); err != nil {
		slog.Warn("loading denylist", "error", err)
	}

	genHandler := handler.NewGeneratorHandler(service.NewGeneratorService(strengthService))
	strengthHandler := handler.NewStrengthHandler(strengthService)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))

		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Post("/api/v1/generate/pronounceable", genHandler.HandleGeneratePronounceable)
		r.Post("/api/v1/strength", strengthHandler.HandleCheck)

		if cfg.AdminSecretHash == "" {
			slog.Info("ADMIN_SECRET_HASH not set, admin routes disabled")
			return
		}
		authHandler := handler.NewAuthHandler(service.NewAuthService(cfg.AdminSecretHash, cfg.JWTSecret, cfg.JWTExpiry))
		r.Post("/api/v1/auth/token", authHandler.HandleToken)

		if denylistRepo == nil {
			return
		}
		denylistHandler := handler.NewDenylistHandler(service.NewDenylistService(denylistRepo, strengthService))
		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuth(cfg.JWTSecret))
			r.Get("/api/v1/denylist", denylistHandler.HandleList)
			r.Post("/api/v1/denylist", denylistHandler.HandleAdd)
			r.Delete("/api/v1/denylist/{word}", denylistHandler.HandleRemove)
		})
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

func newLogger(cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// openDatabase connects to MySQL and creates the schema if needed.
func openDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := repository.NewDB(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := repository.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
