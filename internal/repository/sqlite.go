package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/adamanr/budget_planner/internal/store"
)

const (
	sqliteSchema = `CREATE TABLE IF NOT EXISTS budget_snapshots (
		id INTEGER PRIMARY KEY,
		payload BLOB NOT NULL,
		updated_at TEXT NOT NULL
	)`
	sqliteUpsert = `INSERT INTO budget_snapshots(id, payload, updated_at) VALUES(?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`
	sqliteSelect = `SELECT payload FROM budget_snapshots WHERE id = ?`
)

type SQLiteSnapshots struct {
	db     *sql.DB
	logger *slog.Logger
	now    func() time.Time
}

func NewSQLiteSnapshots(db *sql.DB, logger *slog.Logger) *SQLiteSnapshots {
	return &SQLiteSnapshots{db: db, logger: logger, now: time.Now}
}

func (r *SQLiteSnapshots) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, sqliteSchema); err != nil {
		r.logger.Error("Error creating budget_snapshots table", slog.String("error", err.Error()))
		return fmt.Errorf("create budget_snapshots: %w", err)
	}
	return nil
}

func (r *SQLiteSnapshots) Save(ctx context.Context, state store.State) error {
	payload, err := encodeState(state)
	if err != nil {
		return err
	}

	updatedAt := r.now().UTC().Format(time.RFC3339)
	if _, err := r.db.ExecContext(ctx, sqliteUpsert, SnapshotID, payload, updatedAt); err != nil {
		r.logger.Error("Error saving snapshot", slog.String("error", err.Error()))
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *SQLiteSnapshots) Load(ctx context.Context) (*store.State, error) {
	var payload []byte
	if err := r.db.QueryRowContext(ctx, sqliteSelect, SnapshotID).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.logger.Info("No snapshot stored yet")
			return nil, nil
		}

		r.logger.Error("Error loading snapshot", slog.String("error", err.Error()))
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	return decodeState(payload)
}
