package main

import (
	"context"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"covera/internal/audit"
	"covera/internal/platform/config"
	"covera/internal/platform/httpserver"
	"covera/internal/platform/metrics"
	"covera/internal/platform/middleware"
	registryHandler "covera/internal/registry/handler"
	registryMetrics "covera/internal/registry/metrics"
	registryService "covera/internal/registry/service"
	"covera/internal/registry/store"
	"covera/internal/reports"
	reportsHandler "covera/internal/reports/handler"
	reportsMetrics "covera/internal/reports/metrics"
	httptransport "covera/internal/transport/http"
)

// app is the fully wired process: one record store, the audit pipeline, and
// the HTTP surface over both.
type app struct {
	router http.Handler
	worker *audit.Worker
}

func buildApp(cfg config.Server, log *slog.Logger) *app {
	m := metrics.New()

	records := store.NewInMemory()
	auditStore := audit.NewInMemoryStore()
	auditPublisher := audit.NewQueuedPublisher(auditStore, cfg.AuditBuffer)

	registry := registryService.New(records,
		registryService.WithLogger(log),
		registryService.WithAuditPublisher(auditPublisher),
		registryService.WithMetrics(registryMetrics.New(m.Registry)),
		registryService.WithStrictMode(cfg.StrictMode),
	)
	reporter := reports.NewService(records,
		reports.WithLogger(log),
		reports.WithMetrics(reportsMetrics.New(m.Registry)),
		reports.WithCache(cfg.ReportCacheTTL),
		reports.WithRiskRule(reports.RiskRule{
			WindowDays:            cfg.Risk.WindowDays,
			RecentClaimsThreshold: cfg.Risk.RecentClaimsThreshold,
			AmountRatio:           cfg.Risk.AmountRatio,
		}),
	)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, log,
		middleware.WithDenyHook(m.IncrementRateLimitDenied),
	)

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:  log,
		Metrics: m,
		Limiter: limiter,
		Handlers: []httptransport.Registrar{
			registryHandler.New(registry, log),
			reportsHandler.New(reporter, log),
			audit.NewHandler(auditPublisher, log),
		},
	})

	return &app{
		router: router,
		worker: audit.NewWorker(auditStore, auditPublisher.Inbox()),
	}
}

// run serves until ctx is done. The audit worker flushes queued events after
// the server has stopped accepting requests.
func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	a := buildApp(cfg, log)
	srv := httpserver.New(cfg.Addr, a.router)

	log.Info("starting covera",
		"addr", cfg.Addr,
		"strict_mode", cfg.StrictMode,
		"report_cache_ttl", cfg.ReportCacheTTL.String(),
	)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stopWorker()
		return httpserver.Run(gctx, srv, cfg.ShutdownTimeout, log)
	})
	g.Go(func() error {
		return a.worker.Run(workerCtx)
	})
	if err := g.Wait(); err != nil {
		log.Error("covera stopped with error", "error", err)
		return err
	}
	log.Info("covera stopped")
	return nil
}
