package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adamanr/budget_planner/internal/config"
	"github.com/adamanr/budget_planner/internal/database"
	"github.com/adamanr/budget_planner/internal/repository"
	"github.com/adamanr/budget_planner/internal/seed"
	"github.com/adamanr/budget_planner/internal/store"
)

// openStore builds the store for the configured driver, restores the last
// snapshot and seeds sample data when enabled. The returned func releases the
// storage connection.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*store.Store, repository.Snapshots, func(), error) {
	s := store.New()
	closeFn := func() {}

	var snapshots repository.Snapshots
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		conn, err := database.NewConnect(ctx, cfg, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		closeFn = func() {
			if err := conn.Close(context.Background()); err != nil {
				logger.Error("Error closing database", slog.String("error", err.Error()))
			}
		}
		snapshots = repository.NewPostgresSnapshots(conn, logger)
	case config.DriverSQLite:
		db, err := database.NewSQLite(ctx, cfg.Storage.SQLitePath, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		closeFn = func() {
			if err := db.Close(); err != nil {
				logger.Error("Error closing database", slog.String("error", err.Error()))
			}
		}
		snapshots = repository.NewSQLiteSnapshots(db, logger)
	}

	if snapshots != nil {
		if err := snapshots.EnsureSchema(ctx); err != nil {
			closeFn()
			return nil, nil, nil, fmt.Errorf("ensure schema: %w", err)
		}

		state, err := snapshots.Load(ctx)
		if err != nil {
			closeFn()
			return nil, nil, nil, fmt.Errorf("load snapshot: %w", err)
		}
		if state != nil {
			s.Restore(*state)
			logger.Info("Snapshot restored", slog.Int("organizations", len(state.Organizations)))
		}
	}

	if cfg.Seed.Enabled {
		added, err := seed.Populate(s, logger)
		if err != nil {
			closeFn()
			return nil, nil, nil, err
		}
		if added && snapshots != nil {
			if err := snapshots.Save(ctx, s.State()); err != nil {
				logger.Error("Error saving seeded snapshot", slog.String("error", err.Error()))
			}
		}
	}

	return s, snapshots, closeFn, nil
}
