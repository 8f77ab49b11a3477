package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lizzumiko/storefront-reports/internal/render"
	"github.com/lizzumiko/storefront-reports/internal/reports"
	"github.com/lizzumiko/storefront-reports/pkg/config"
	"github.com/lizzumiko/storefront-reports/pkg/db"
	"github.com/lizzumiko/storefront-reports/pkg/logger"
	"github.com/lizzumiko/storefront-reports/pkg/metrics"
	"github.com/lizzumiko/storefront-reports/pkg/migrate"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "reports"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "reports",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	reportsService, err := reports.NewService(reports.ServiceParams{
		Repo:                  reports.NewRepository(dbClient.DB()),
		RecentOrderWindowDays: cfg.Reports.RecentOrderWindowDays,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create reports service", err)
		os.Exit(1)
	}

	runner, err := reports.NewRunner(reports.RunnerParams{
		Service: reportsService,
		Sink:    render.NewConsole(os.Stdout),
		Logger:  logg,
		Metrics: metrics.NewReportMetrics(prometheus.NewRegistry()),
		Now:     func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create report runner", err)
		os.Exit(1)
	}

	ctx := logg.WithField(context.Background(), "env", cfg.App.Env)
	logg.Info(ctx, "running reports")

	if err := runner.RunAll(ctx); err != nil {
		logg.Error(ctx, "one or more reports failed", err)
		os.Exit(1)
	}
}
