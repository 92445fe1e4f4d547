package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hearthlabs/hearthcal/internal/domain/calendar"
)

// StateRepository is a mock for calendar.StateRepository.
type StateRepository struct {
	mock.Mock
}

func (m *StateRepository) Save(ctx context.Context, state *calendar.State) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *StateRepository) Load(ctx context.Context) (*calendar.State, error) {
	args := m.Called(ctx)
	if state, ok := args.Get(0).(*calendar.State); ok {
		return state, args.Error(1)
	}
	return nil, args.Error(1)
}
