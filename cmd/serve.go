package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	api "github.com/adamanr/budget_planner/internal/api/http"
	"github.com/adamanr/budget_planner/internal/controllers"
	"github.com/adamanr/budget_planner/internal/database"
	"github.com/adamanr/budget_planner/internal/lookup"
	"github.com/adamanr/budget_planner/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	s, snapshots, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open storage", slog.String("error", err.Error()))
		return err
	}
	defer closeStore()

	deps := &controllers.Dependens{
		Store:     s,
		Snapshots: snapshots,
		Logger:    logger,
		Config:    cfg,
	}

	var cache lookup.Cache
	if cfg.Redis.Enabled {
		rdb, err := database.NewRedisConn(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer rdb.Close()

		deps.Redis = rdb
		cache = rdb
	}

	countries, err := lookup.NewRestCountries(cfg.Lookup.CountriesURL, cfg.Lookup.Timeout, cfg.Lookup.CacheTTL, cache, logger)
	if err != nil {
		return err
	}
	deps.Countries = countries

	airports, err := lookup.NewAirports()
	if err != nil {
		return err
	}
	deps.Airports = airports

	m, err := metrics.New(prometheus.DefaultRegisterer, s)
	if err != nil {
		return err
	}
	deps.Metrics = m

	server := api.NewServer(deps)
	srv := &http.Server{
		Handler:           server.Router(prometheus.DefaultGatherer),
		Addr:              cfg.Server.Host,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server is starting",
			slog.String("address", cfg.Server.Host),
			slog.String("storage", cfg.Storage.Driver),
			slog.Bool("auth", cfg.Auth.Enabled),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server stopped", slog.String("error", err.Error()))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("Server is shutting down")
	return srv.Shutdown(shutdownCtx)
}
