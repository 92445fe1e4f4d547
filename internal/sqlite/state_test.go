package sqlite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hearthlabs/hearthcal/internal/domain/calendar"
	"github.com/hearthlabs/hearthcal/internal/repository"
)

func TestStateRepository_Load_Empty(t *testing.T) {
	repo := NewStateRepository(NewTestDB(t))

	_, err := repo.Load(context.Background())
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStateRepository_RoundTrip(t *testing.T) {
	repo := NewStateRepository(NewTestDB(t))
	ctx := context.Background()

	jan5 := time.Date(2025, 1, 5, 14, 30, 0, 0, time.UTC)
	want := &calendar.State{
		Events: []calendar.Event{
			{ID: "e1", Title: "Recital", Description: "School gym", Date: jan5, CircleID: "2"},
		},
		Photos: []calendar.Photo{
			{ID: "p1", URL: "https://example.com/a.jpg", Caption: "cake", Date: jan5, CircleID: "3"},
		},
		Messages: []calendar.Message{
			{ID: "m1", SenderID: "u1", Text: "on my way", Timestamp: jan5.Add(time.Hour), CircleID: "1"},
		},
		CurrentUser: &calendar.User{ID: "u1", Name: "Dad"},
	}

	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)

	require.Len(t, got.Events, 1)
	require.Equal(t, want.Events[0].ID, got.Events[0].ID)
	require.Equal(t, want.Events[0].Title, got.Events[0].Title)
	// Dates compare equal as instants, not as strings.
	require.True(t, got.Events[0].Date.Equal(want.Events[0].Date))
	require.True(t, got.Messages[0].Timestamp.Equal(want.Messages[0].Timestamp))
	require.Equal(t, want.Photos[0], got.Photos[0])
	require.Equal(t, want.CurrentUser, got.CurrentUser)
}

func TestStateRepository_Save_ReplacesPreviousBlob(t *testing.T) {
	repo := NewStateRepository(NewTestDB(t))
	ctx := context.Background()

	first := &calendar.State{Events: []calendar.Event{{ID: "e1"}}}
	second := &calendar.State{Events: []calendar.Event{{ID: "e2"}}}

	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Events, 1)
	require.Equal(t, "e2", got.Events[0].ID)
}

func TestStateRepository_Load_CorruptBlob(t *testing.T) {
	db := NewTestDB(t)
	repo := NewStateRepository(db)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO app_state (key, data) VALUES (?, ?)`, "calendar/state", "{not json")
	require.NoError(t, err)

	_, err = repo.Load(ctx)
	require.Error(t, err)
	require.NotErrorIs(t, err, repository.ErrNotFound)
}

// The date-revival regression: an event persisted on Jan 5 2025 must still
// land in the Jan 5 2025 day bucket after a restart.
func TestStateRepository_ReloadKeepsDayLookup(t *testing.T) {
	db := NewTestDB(t)
	repo := NewStateRepository(db)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	now := time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC)
	clock := calendar.WithClock(func() time.Time { return now })

	first := calendar.NewService(ctx, repo, logger, clock)
	jan5 := time.Date(2025, 1, 5, 19, 0, 0, 0, time.UTC)
	ev := first.AddEvent(ctx, calendar.EventDraft{Title: "Recital", Date: jan5, CircleID: "2"})

	// A fresh engine over the same database simulates a process restart.
	second := calendar.NewService(ctx, repo, logger, clock)
	day := second.DayContent(jan5)
	require.Len(t, day.Events, 1)
	require.Equal(t, ev.ID, day.Events[0].ID)
	require.True(t, day.Events[0].Date.Equal(jan5))
}

func TestStateRepository_ReloadKeepsCurrentUser(t *testing.T) {
	db := NewTestDB(t)
	repo := NewStateRepository(db)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	first := calendar.NewService(ctx, repo, logger)
	require.True(t, first.SwitchUser(ctx, "u3"))

	second := calendar.NewService(ctx, repo, logger)
	require.Equal(t, "u3", second.CurrentUser().ID)
}
