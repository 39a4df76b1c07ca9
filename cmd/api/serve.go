package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"legaldocs/internal/auth"
	"legaldocs/internal/config"
	"legaldocs/internal/database"
	"legaldocs/internal/document"
	"legaldocs/internal/drs"
	"legaldocs/internal/http/handler"
	"legaldocs/internal/http/middleware"
	"legaldocs/internal/logging"
	tracing "legaldocs/internal/otel"
	"legaldocs/internal/repository/postgres"
	"legaldocs/internal/service"
	"legaldocs/internal/storage"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP server",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.Location())

	shutdownTracing, err := tracing.Init(ctx, logger)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.WithError(err).Warn("tracing_shutdown_failed")
		}
	}()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize object storage: %w", err)
	}

	records, err := drs.NewClient(cfg.DRS)
	if err != nil {
		return fmt.Errorf("failed to initialize document record service client: %w", err)
	}

	tokens, err := auth.NewValidator(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to initialize token validator: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	backendMetrics, err := service.NewMetrics(reg)
	if err != nil {
		return err
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return err
	}

	drafts := document.NewDraftResolver(postgres.NewDocumentPostgres(db), postgres.NewFilingPostgres(db))
	documents := service.NewDocumentService(store, records, drafts,
		service.WithPresignExpiry(cfg.Storage.PresignExpiry),
		service.WithMetrics(backendMetrics),
	)

	app := newApp(appDeps{
		Dependencies: handler.Dependencies{
			DB:        db,
			Documents: documents,
			Tokens:    tokens,
			Log:       logger,
		},
		HTTPMetrics: httpMetrics,
		Gatherer:    reg,
	})

	go func() {
		<-ctx.Done()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.WithError(err).Error("server_shutdown_failed")
		}
	}()

	addr := ":" + cfg.Port
	logger.WithFields(logrus.Fields{
		"addr":            addr,
		"storage_backend": cfg.Storage.Backend,
	}).Info("server_starting")

	if err := app.Listen(addr); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	logger.Info("server_stopped")
	return nil
}
