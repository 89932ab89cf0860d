package router

import (
	"net/http"

	_ "pet-digital-twin/docs" // registra la doc de swagger

	"pet-digital-twin/internal/domain/alerts"
	"pet-digital-twin/internal/domain/cart"
	"pet-digital-twin/internal/domain/catalog"
	"pet-digital-twin/internal/domain/ledger"
	"pet-digital-twin/internal/domain/pets"
	"pet-digital-twin/internal/domain/wellness"
	"pet-digital-twin/internal/middleware"
	"pet-digital-twin/internal/platform/logger"
	"pet-digital-twin/internal/platform/metrics"
	"pet-digital-twin/internal/ports/providers"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Pets es obligatorio: el EntityStore ya abierto (con la sesión retomada).
	Pets *pets.Service

	Linker   providers.AccountLinker
	Checkout providers.CheckoutProvider

	// Opcionales: si vienen nil se crean acá.
	AlertSessions *alerts.Sessions
	Cart          *cart.Ledger
	Wellness      *wellness.Engine

	// LedgerBatchKeys activa la idempotencia por lote en imports (apagada por defecto).
	LedgerBatchKeys bool

	Logger  logger.Logger
	Metrics *metrics.Metrics
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(logger.Component(log, "http")))
	r.Use(chimw.Recoverer)
	r.Use(middleware.ViewSession)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Metrics.Registry, promhttp.HandlerOpts{}))
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	ledgerOpts := []ledger.Option{ledger.WithLogger(logger.Component(log, "ledger")), ledger.WithMetrics(opts.Metrics)}
	if opts.LedgerBatchKeys {
		ledgerOpts = append(ledgerOpts, ledger.WithBatchKeys())
	}
	ledgerSvc := ledger.NewService(opts.Pets, ledgerOpts...)

	engine := opts.Wellness
	if engine == nil {
		engine = wellness.NewEngine()
	}
	sessions := opts.AlertSessions
	if sessions == nil {
		sessions = alerts.NewSessions(alerts.WithMetrics(opts.Metrics))
	}
	cartLedger := opts.Cart
	if cartLedger == nil {
		cartLedger = cart.NewLedger(cart.WithMetrics(opts.Metrics))
	}
	checkout := cart.NewCheckout(cartLedger, opts.Checkout, logger.Component(log, "cart"), opts.Metrics)

	// Rutas por módulo
	pets.RegisterRoutes(r, opts.Pets)
	ledger.RegisterRoutes(r, ledgerSvc, opts.Linker)
	wellness.RegisterRoutes(r, engine, opts.Pets)
	alerts.RegisterRoutes(r, sessions, opts.Pets)
	catalog.RegisterRoutes(r, opts.Pets, cartLedger)
	cart.RegisterRoutes(r, cartLedger, checkout, catalog.Lookup)

	return r
}
