package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/adamanr/budget_planner/internal/store"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	postgresSchema = `CREATE TABLE IF NOT EXISTS budget_snapshots (
		id INT PRIMARY KEY,
		payload JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`
	postgresUpsert = `INSERT INTO budget_snapshots (id, payload, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`
	postgresSelect = `SELECT payload FROM budget_snapshots WHERE id = $1`
)

// DB is the part of *pgx.Conn the snapshot repository needs.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type PostgresSnapshots struct {
	db     DB
	logger *slog.Logger
	now    func() time.Time
}

func NewPostgresSnapshots(db DB, logger *slog.Logger) *PostgresSnapshots {
	return &PostgresSnapshots{db: db, logger: logger, now: time.Now}
}

func (r *PostgresSnapshots) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, postgresSchema); err != nil {
		r.logger.Error("Error creating budget_snapshots table", slog.String("error", err.Error()))
		return fmt.Errorf("create budget_snapshots: %w", err)
	}
	return nil
}

func (r *PostgresSnapshots) Save(ctx context.Context, state store.State) error {
	payload, err := encodeState(state)
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, postgresUpsert, SnapshotID, payload, r.now().UTC()); err != nil {
		r.logger.Error("Error saving snapshot", slog.String("error", err.Error()))
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *PostgresSnapshots) Load(ctx context.Context) (*store.State, error) {
	var payload []byte
	if err := r.db.QueryRow(ctx, postgresSelect, SnapshotID).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Info("No snapshot stored yet")
			return nil, nil
		}

		r.logger.Error("Error loading snapshot", slog.String("error", err.Error()))
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	return decodeState(payload)
}
