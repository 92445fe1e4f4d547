package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hearthlabs/hearthcal/internal/domain/calendar"
	"github.com/hearthlabs/hearthcal/internal/repository"
)

// stateKey is the fixed storage key the whole engine state lives under.
const stateKey = "calendar/state"

// StateRepository implements calendar.StateRepository on SQLite. The state
// is one JSON blob; date fields serialize as RFC 3339 strings and revive as
// time.Time when the blob is decoded.
type StateRepository struct {
	db *DB
}

// NewStateRepository creates a new StateRepository
func NewStateRepository(db *DB) *StateRepository {
	return &StateRepository{db: db}
}

// Save writes the blob synchronously, replacing any previous value.
func (r *StateRepository) Save(ctx context.Context, state *calendar.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	query := `
		INSERT INTO app_state (key, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := r.db.ExecContext(ctx, query, stateKey, string(data)); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

// Load reads the blob back. Absence maps to repository.ErrNotFound; a blob
// that fails to decode is reported as an error and left to the caller's
// fallback policy.
func (r *StateRepository) Load(ctx context.Context) (*calendar.State, error) {
	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM app_state WHERE key = ?`, stateKey).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}

	var state calendar.State
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	return &state, nil
}
