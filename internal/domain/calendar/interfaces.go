package calendar

import "context"

// StateRepository persists the engine state as a single blob and revives it
// on startup. Load returns repository.ErrNotFound when no blob exists.
type StateRepository interface {
	Save(ctx context.Context, state *State) error
	Load(ctx context.Context) (*State, error)
}
