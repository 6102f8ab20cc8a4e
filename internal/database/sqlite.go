package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// NewSQLite opens the sqlite file, creating its directory when needed.
// Use ":memory:" for a throwaway database.
func NewSQLite(ctx context.Context, path string, logger *slog.Logger) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			logger.Error("Error creating sqlite directory", slog.String("error", err.Error()))
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		logger.Error("Error opening sqlite", slog.String("error", err.Error()))
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one connection keeps ":memory:" databases alive and serialises writers
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		logger.Error("Error connecting to sqlite", slog.String("error", err.Error()))
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	logger.Info("Opened sqlite database", slog.String("path", path))
	return db, nil
}
