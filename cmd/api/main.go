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

	"pet-digital-twin/internal/adapters/providers/httpapi"
	"pet-digital-twin/internal/adapters/providers/simulated"
	"pet-digital-twin/internal/adapters/storage/memory"
	"pet-digital-twin/internal/adapters/storage/postgres"
	redisstore "pet-digital-twin/internal/adapters/storage/redis"
	"pet-digital-twin/internal/adapters/storage/sqlite"
	"pet-digital-twin/internal/domain/alerts"
	"pet-digital-twin/internal/domain/pets"
	"pet-digital-twin/internal/platform/config"
	"pet-digital-twin/internal/platform/logger"
	"pet-digital-twin/internal/platform/metrics"
	"pet-digital-twin/internal/ports/providers"
	"pet-digital-twin/internal/ports/session"
	"pet-digital-twin/internal/router"
	"pet-digital-twin/internal/seed"

	"golang.org/x/sync/errgroup"
)

const (
	alertSessionIdle  = 30 * time.Minute // vistas sin actividad pierden su copia de alertas
	alertSweepEvery   = 5 * time.Minute
	providerHTTPLimit = 15 * time.Second
)

func main() {
	log := logger.NewFromEnv()
	if err := run(log); err != nil {
		log.Error("server stopped", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}

func run(log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.FromEnv()
	m := metrics.New()

	registry, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}
	repo, err := memory.NewPetRepo(registry)
	if err != nil {
		return fmt.Errorf("pet registry: %w", err)
	}

	store, closeStore, err := openSessionStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("session store (%s): %w", cfg.SessionBackend, err)
	}
	defer closeStore()

	petSvc, err := pets.NewService(ctx, repo, store, pets.WithLogger(logger.Component(log, "pets")), pets.WithMetrics(m))
	if err != nil {
		return fmt.Errorf("open entity store: %w", err)
	}

	linker, checkout, err := buildProviders(cfg)
	if err != nil {
		return fmt.Errorf("providers: %w", err)
	}

	alertSessions := alerts.NewSessions(alerts.WithMetrics(m))

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: router.NewRouter(router.Options{
			Pets:          petSvc,
			Linker:        linker,
			Checkout:      checkout,
			AlertSessions: alertSessions,
			Logger:        log,
			Metrics:       m,
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{
		"addr":            cfg.Addr,
		"session_backend": string(cfg.SessionBackend),
		"active_pet":      petSvc.ActiveID(),
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		t := time.NewTicker(alertSweepEvery)
		defer t.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-t.C:
				if n := alertSessions.Sweep(alertSessionIdle); n > 0 {
					log.Debug("alert sessions swept", map[string]any{"removed": n, "remaining": alertSessions.Len()})
				}
			}
		}
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down", nil)
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// openSessionStore devuelve además la función que libera el backend.
func openSessionStore(ctx context.Context, cfg config.Server) (session.Store, func(), error) {
	switch cfg.SessionBackend {
	case config.SessionMemory:
		return memory.NewSessionStore(), func() {}, nil

	case config.SessionRedis:
		client, err := redisstore.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return redisstore.NewSessionStore(client), func() { _ = client.Close() }, nil

	case config.SessionPostgres:
		db, err := postgres.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		st, err := postgres.NewSessionStore(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return st, func() { _ = db.Close() }, nil

	default:
		st, err := sqlite.Open(cfg.SessionDBPath)
		if err != nil {
			return nil, nil, err
		}
		return st, func() { _ = st.Close() }, nil
	}
}

func buildProviders(cfg config.Server) (providers.AccountLinker, providers.CheckoutProvider, error) {
	if cfg.ProviderBaseURL == "" {
		return simulated.NewLinker(cfg.ProviderDelay), simulated.NewCheckout(cfg.ProviderDelay), nil
	}
	c, err := httpapi.New(cfg.ProviderBaseURL, cfg.ProviderAPIKey, providerHTTPLimit)
	if err != nil {
		return nil, nil, err
	}
	return c.Linker(), c.Checkout(), nil
}
