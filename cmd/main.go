package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/fyrel/books/internal/books"
	"github.com/fyrel/books/internal/httpapi"
	"github.com/fyrel/books/internal/storage"
	pgstore "github.com/fyrel/books/internal/storage/postgres"
	redisstore "github.com/fyrel/books/internal/storage/redis"
	sqlitestore "github.com/fyrel/books/internal/storage/sqlite"
)

// Config holds runtime configuration for the service. The snapshot backend is
// selected by precedence: PG_DSN, then REDIS_ADDR, then the sqlite file.
type Config struct {
	Addr         string        `envconfig:"APP_ADDR" default:":8080"`
	ReadTimeout  time.Duration `envconfig:"APP_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"10s"`
	IdleTimeout  time.Duration `envconfig:"APP_IDLE_TIMEOUT" default:"60s"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	PGDSN      string `envconfig:"PG_DSN"`
	RedisAddr  string `envconfig:"REDIS_ADDR"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:"books.db"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}

	logger := buildLogger(cfg)
	slog.SetDefault(logger)

	snaps, backend, err := openStore(ctx, cfg)
	if err != nil {
		logger.Error("failed to open snapshot store", "backend", backend, "err", err)
		os.Exit(1)
	}
	defer snaps.Close()
	logger.Info("snapshot backend: " + backend)

	svc := books.New(snaps, logger)
	if err := svc.Load(ctx); err != nil {
		logger.Error("failed to restore snapshots", "err", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.New(svc, logger).Handler(),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("books service listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctxShutdown); err != nil {
			logger.Error("server shutdown error", "err", err)
		}
	case err := <-errCh:
		logger.Error("server error", "err", err)
	}
}

func openStore(ctx context.Context, cfg Config) (storage.Store, string, error) {
	if dsn := strings.TrimSpace(cfg.PGDSN); dsn != "" {
		st, err := pgstore.Open(ctx, dsn)
		return st, "postgres", err
	}
	if addr := strings.TrimSpace(cfg.RedisAddr); addr != "" {
		st, err := redisstore.New(ctx, addr)
		return st, "redis", err
	}
	st, err := sqlitestore.New(cfg.SQLitePath)
	return st, "sqlite", err
}

func buildLogger(cfg Config) *slog.Logger {
	level := parseLogLevel(cfg.LogLevel)
	if strings.ToLower(cfg.LogFormat) == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

// parseLogLevel maps env values to slog.Leveler
func parseLogLevel(s string) slog.Leveler {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
