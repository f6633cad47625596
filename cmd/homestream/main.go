package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/JoeSaf/homeStream/internal/app"
	"github.com/JoeSaf/homeStream/internal/catalog"
	"github.com/JoeSaf/homeStream/internal/config"
	"github.com/JoeSaf/homeStream/internal/platform/logging"
	"github.com/JoeSaf/homeStream/internal/platform/metrics"
	"github.com/JoeSaf/homeStream/internal/session"
	"github.com/JoeSaf/homeStream/internal/tmdb"
)

const (
	sweepInterval   = time.Minute
	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.IsProduction())
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	registry := metrics.New()

	keys, err := tmdb.NewKeyRing(cfg.TMDBAPIKeys...)
	if err != nil {
		return err
	}
	client, err := tmdb.New(keys,
		tmdb.WithBaseURL(cfg.TMDBBaseURL),
		tmdb.WithLanguage(cfg.TMDBLanguage),
		tmdb.WithTimeout(cfg.TMDBTimeout),
		tmdb.WithLogger(log.Named("tmdb")),
		tmdb.WithMetrics(registry),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions := session.NewStore(cfg.SessionTTL, log.Named("session"), registry)
	go sessions.Run(ctx, sweepInterval)

	server := app.New(
		catalog.New(client, log.Named("catalog"), registry),
		sessions,
		client.HTTPClient(),
		log,
		registry,
	)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("homeStream listening",
			zap.String("addr", cfg.Addr),
			zap.String("env", cfg.Env),
			zap.Int("api_keys", keys.Len()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
