package calendar

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hearthlabs/hearthcal/internal/repository"
)

// Service is the state engine: it owns the authoritative collections, the
// session state (current user, active circle filter, selected date), and the
// derived views recomputed after every mutation. All mutation and read
// access goes through it; presentation layers hold no state of their own.
//
// Mutations are serialized: each one runs to completion, including its
// persistence write, before the next begins.
type Service struct {
	repo   StateRepository
	logger *slog.Logger

	now            func() time.Time
	newID          func() string
	placeholderURL func() string

	mu       sync.Mutex
	circles  []Circle
	users    []User
	state    State
	active   string
	selected time.Time

	// derived views, never the source of truth
	visibleEvents   []Event
	visiblePhotos   []Photo
	visibleMessages []Message
	index           *dayIndex
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides entity id generation, so tests can supply
// deterministic ids.
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) { s.newID = gen }
}

// WithPlaceholderURL overrides the placeholder generated for photos added
// without a URL.
func WithPlaceholderURL(gen func() string) Option {
	return func(s *Service) { s.placeholderURL = gen }
}

// WithReferenceData overrides the built-in circles and users.
func WithReferenceData(circles []Circle, users []User) Option {
	return func(s *Service) {
		s.circles = circles
		s.users = users
	}
}

// NewService constructs the engine and hydrates it from the repository,
// falling back to the seed dataset when the blob is absent or unreadable.
// A corrupt store degrades to "start fresh"; it never fails construction.
func NewService(ctx context.Context, repo StateRepository, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
		active: FilterAll,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.placeholderURL == nil {
		s.placeholderURL = func() string { return placeholderPhotoURL(uuid.NewString()) }
	}
	if s.circles == nil {
		s.circles = SeedCircles()
	}
	if s.users == nil {
		s.users = SeedUsers()
	}
	s.selected = s.now()

	s.hydrate(ctx)
	s.recompute()
	return s
}

func (s *Service) hydrate(ctx context.Context) {
	st, err := s.repo.Load(ctx)
	switch {
	case err == nil && st != nil:
		s.state = *st
	case errors.Is(err, repository.ErrNotFound):
		s.logger.Info("no persisted state, seeding")
		s.state = *SeedState(s.now())
	default:
		s.logger.Warn("persisted state unreadable, starting fresh", "error", err)
		s.state = *SeedState(s.now())
	}
	// Blobs written by earlier layouts carry no current user.
	if s.state.CurrentUser == nil && len(s.users) > 0 {
		u := s.users[0]
		s.state.CurrentUser = &u
	}
}

// recompute rebuilds the filtered views and the day index. Called with the
// lock held, after every mutation and filter change, so a read immediately
// following a write always observes the write.
func (s *Service) recompute() {
	s.visibleEvents = FilterByCircle(s.state.Events, s.active)
	s.visiblePhotos = FilterByCircle(s.state.Photos, s.active)
	s.visibleMessages = FilterByCircle(s.state.Messages, s.active)
	s.index = buildDayIndex(s.visibleEvents, s.visiblePhotos)
}

// persist writes the whole blob synchronously. A failed write is logged and
// the in-memory state stands; there are no fatal error paths in the engine.
func (s *Service) persist(ctx context.Context) {
	snapshot := s.state
	if err := s.repo.Save(ctx, &snapshot); err != nil {
		s.logger.Error("persist state", "error", err)
	}
}

// AddEvent assigns a fresh id and appends the event. Empty titles are
// accepted; drafts are validated by the caller, not here.
func (s *Service) AddEvent(ctx context.Context, draft EventDraft) Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev := Event{
		ID:          s.newID(),
		Title:       draft.Title,
		Description: draft.Description,
		Date:        draft.Date,
		CircleID:    draft.CircleID,
	}
	s.state.Events = append(s.state.Events, ev)
	s.recompute()
	s.persist(ctx)
	return ev
}

// AddPhoto assigns a fresh id and appends the photo, substituting a
// generated placeholder when the draft has no URL.
func (s *Service) AddPhoto(ctx context.Context, draft PhotoDraft) Photo {
	s.mu.Lock()
	defer s.mu.Unlock()

	url := draft.URL
	if url == "" {
		url = s.placeholderURL()
	}
	ph := Photo{
		ID:       s.newID(),
		URL:      url,
		Caption:  draft.Caption,
		Date:     draft.Date,
		CircleID: draft.CircleID,
	}
	s.state.Photos = append(s.state.Photos, ph)
	s.recompute()
	s.persist(ctx)
	return ph
}

// DeleteEvent removes the matching event. Unknown ids are a no-op, not an
// error.
func (s *Service) DeleteEvent(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept, removed := deleteByID(s.state.Events, id, func(e Event) string { return e.ID })
	if !removed {
		return
	}
	s.state.Events = kept
	s.recompute()
	s.persist(ctx)
}

// DeletePhoto removes the matching photo. Unknown ids are a no-op.
func (s *Service) DeletePhoto(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept, removed := deleteByID(s.state.Photos, id, func(p Photo) string { return p.ID })
	if !removed {
		return
	}
	s.state.Photos = kept
	s.recompute()
	s.persist(ctx)
}

func deleteByID[T any](items []T, id string, key func(T) string) ([]T, bool) {
	for i, item := range items {
		if key(item) == id {
			kept := make([]T, 0, len(items)-1)
			kept = append(kept, items[:i]...)
			kept = append(kept, items[i+1:]...)
			return kept, true
		}
	}
	return items, false
}

// AddMessage appends a chat message stamped with the current user and the
// current time. Text that is blank after trimming is rejected as a silent
// no-op; the second return reports whether the message was added.
func (s *Service) AddMessage(ctx context.Context, text, circleID string) (Message, bool) {
	if strings.TrimSpace(text) == "" {
		return Message{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := Message{
		ID:        s.newID(),
		SenderID:  s.state.CurrentUser.ID,
		Text:      text,
		Timestamp: s.now(),
		CircleID:  circleID,
	}
	s.state.Messages = append(s.state.Messages, msg)
	s.recompute()
	s.persist(ctx)
	return msg, true
}

// SwitchUser changes the active identity. Unknown ids are a no-op. The
// switch persists, so the identity survives restarts.
func (s *Service) SwitchUser(ctx context.Context, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == userID {
			user := u
			s.state.CurrentUser = &user
			s.persist(ctx)
			return true
		}
	}
	return false
}

// SetActiveCircleFilter selects FilterAll or a circle id and recomputes the
// derived views. An unknown id yields empty views by construction; the value
// is not validated. Idempotent.
func (s *Service) SetActiveCircleFilter(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == value {
		return
	}
	s.active = value
	s.recompute()
}

// SetSelectedDate records which day the presentation layer focuses on. UI
// state only: not filtered, not persisted.
func (s *Service) SetSelectedDate(date time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = date
}

// VisibleEvents returns the events visible under the active filter, in
// insertion order.
func (s *Service) VisibleEvents() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event{}, s.visibleEvents...)
}

// VisiblePhotos returns the photos visible under the active filter.
func (s *Service) VisiblePhotos() []Photo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Photo{}, s.visiblePhotos...)
}

// VisibleMessages returns the messages visible under the active filter.
// Chat uses the same visibility rule as events and photos.
func (s *Service) VisibleMessages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message{}, s.visibleMessages...)
}

// DayContent returns the visible events and photos falling on the given
// calendar day. Days with no entries get empty slices, never nil.
func (s *Service) DayContent(date time.Time) DayContent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.lookup(date)
}

// CurrentUser returns the active identity.
func (s *Service) CurrentUser() User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.state.CurrentUser
}

// Circles returns the configured visibility tiers.
func (s *Service) Circles() []Circle {
	return append([]Circle{}, s.circles...)
}

// Users returns the configured family members.
func (s *Service) Users() []User {
	return append([]User{}, s.users...)
}

// ActiveCircleFilter returns FilterAll or the selected circle id.
func (s *Service) ActiveCircleFilter() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// SelectedDate returns the day the presentation layer currently focuses on.
func (s *Service) SelectedDate() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}
