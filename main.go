package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	appcart "github.com/farmchain/marketplace/internal/application/cart"
	appcatalog "github.com/farmchain/marketplace/internal/application/catalog"
	appcheckout "github.com/farmchain/marketplace/internal/application/checkout"
	appregistration "github.com/farmchain/marketplace/internal/application/registration"
	"github.com/farmchain/marketplace/internal/config"
	"github.com/farmchain/marketplace/internal/infrastructure/audit"
	httptransport "github.com/farmchain/marketplace/internal/infrastructure/http"
	"github.com/farmchain/marketplace/internal/infrastructure/id"
	"github.com/farmchain/marketplace/internal/infrastructure/memory"
	"github.com/farmchain/marketplace/internal/infrastructure/outbox"
	"github.com/farmchain/marketplace/internal/pkg/logging"
)

func main() {
	cfg := config.Load()

	logger := logging.MustNewLogger(cfg.ServiceName, cfg.Env)
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)
	httpDurations := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP request handling in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	marketplaceEvents := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_events_total",
			Help: "Count of marketplace events observed by the audit worker.",
		},
		[]string{"event"},
	)
	prometheus.MustRegister(httpRequests, httpDurations, marketplaceEvents)

	catalogRepo := memory.NewCatalogRepository()
	cartRepo := memory.NewCartRepository()

	if cfg.SeedCatalog {
		if err := memory.SeedCatalog(context.Background(), catalogRepo); err != nil {
			logger.Fatal("seed_catalog_failed", zap.Error(err))
		}
		logger.Info("catalog_seeded")
	}

	bus := outbox.NewBus(logger)
	bus.Start(context.Background())
	defer bus.Stop(context.Background())

	catalogService := appcatalog.NewService(catalogRepo)
	cartService := appcart.NewService(cartRepo, catalogRepo)
	checkoutService := appcheckout.NewService(catalogRepo, bus)
	registrationService := appregistration.NewService(catalogRepo, id.NewWalletAddressGenerator(), bus)

	auditWorker := audit.New(bus, marketplaceEvents)
	auditWorker.Start()

	handler := httptransport.NewHandler(
		catalogService,
		cartService,
		checkoutService,
		registrationService,
		cfg.ConfirmDelay,
	)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", handler.Router(
		httptransport.Observability(logger, httpRequests, httpDurations),
	))

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("http_server_start",
			zap.String("addr", server.Addr),
		)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http_server_error",
				zap.Error(err),
			)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http_server_shutdown_error",
			zap.Error(err),
		)
	} else {
		logger.Info("http_server_stopped")
	}
}
