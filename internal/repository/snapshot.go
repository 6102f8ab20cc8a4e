// Package repository persists the whole store as a single JSON snapshot row.
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/adamanr/budget_planner/internal/store"
)

// SnapshotID is the primary key of the only row in budget_snapshots.
const SnapshotID = 1

// Snapshots saves and loads the store state. Load returns nil when nothing
// has been saved yet.
type Snapshots interface {
	EnsureSchema(ctx context.Context) error
	Save(ctx context.Context, state store.State) error
	Load(ctx context.Context) (*store.State, error)
}

func encodeState(state store.State) ([]byte, error) {
	payload, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return payload, nil
}

func decodeState(payload []byte) (*store.State, error) {
	var state store.State
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &state, nil
}
