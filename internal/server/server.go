// Package server boots the HTTP API: configuration, connections, the
// middleware stack and graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fabiogif/moday-backoffice/app/routes"
	"github.com/fabiogif/moday-backoffice/config"
	"github.com/fabiogif/moday-backoffice/pkg/audit"
	"github.com/fabiogif/moday-backoffice/pkg/cache"
	"github.com/fabiogif/moday-backoffice/pkg/database"
	"github.com/fabiogif/moday-backoffice/pkg/logger"
	"github.com/fabiogif/moday-backoffice/pkg/metrics"
	"github.com/fabiogif/moday-backoffice/pkg/middleware"
	"github.com/fabiogif/moday-backoffice/pkg/orm"
	"github.com/fabiogif/moday-backoffice/pkg/reqid"
	"github.com/fabiogif/moday-backoffice/pkg/router"
	"github.com/fabiogif/moday-backoffice/pkg/storage"
)

// cacheStore adapts pkg/cache to the orm.Cacher interface. Assigning it
// at boot keeps orm and cache from importing each other.
type cacheStore struct{}

func (cacheStore) Get(key string, dest interface{}) bool {
	if cache.Get(key, dest) {
		metrics.CacheHits.Inc()
		return true
	}
	metrics.CacheMisses.Inc()
	return false
}

func (cacheStore) Set(key string, value interface{}, ttl time.Duration) error {
	return cache.Set(key, value, ttl)
}

// Start boots everything and blocks until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("server: load config: %w", err)
	}

	if err := database.Connect(); err != nil {
		return err
	}
	cache.Connect()
	orm.CacheStore = cacheStore{}
	storage.Connect()

	if err := audit.Connect(); err != nil {
		// The API works without the trail; log and continue.
		logger.Warn("server: audit trail unavailable", "error", err)
	}
	defer audit.Close()

	r := router.New()
	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(300, time.Minute),
	)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok")) //nolint:errcheck
	})
	r.Get("/metrics", "metrics", metrics.Handler())

	routes.RegisterAPI(r)

	addr := ":" + config.AppPort()
	srv := &http.Server{
		Addr:              addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server: listening", "addr", addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: listen: %w", err)
	case sig := <-stop:
		logger.Info("server: shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}

	logger.Info("server: stopped")
	return nil
}
