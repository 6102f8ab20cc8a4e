package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adamanr/budget_planner/internal/config"
	"github.com/jackc/pgx/v5"
)

// PostgresURL builds the connection string from the database section.
func PostgresURL(cfg *config.Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		cfg.Database.User, cfg.Database.Password, cfg.Database.Host, cfg.Database.Database)
}

func NewConnect(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, PostgresURL(cfg))
	if err != nil {
		logger.Error("Error connecting to DB", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Connected to DB successfully", slog.String("host", cfg.Database.Host))
	return conn, nil
}
