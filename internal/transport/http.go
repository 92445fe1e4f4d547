package transport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hearthlabs/hearthcal/internal/domain/calendar"
)

// Engine is the consumer-facing surface of the state engine. Presentation
// processes talk to it through this JSON API; they hold no state of their
// own.
type Engine interface {
	VisibleEvents() []calendar.Event
	VisiblePhotos() []calendar.Photo
	VisibleMessages() []calendar.Message
	DayContent(date time.Time) calendar.DayContent
	CurrentUser() calendar.User
	Circles() []calendar.Circle
	Users() []calendar.User
	ActiveCircleFilter() string
	SelectedDate() time.Time

	AddEvent(ctx context.Context, draft calendar.EventDraft) calendar.Event
	AddPhoto(ctx context.Context, draft calendar.PhotoDraft) calendar.Photo
	DeleteEvent(ctx context.Context, id string)
	DeletePhoto(ctx context.Context, id string)
	AddMessage(ctx context.Context, text, circleID string) (calendar.Message, bool)
	SwitchUser(ctx context.Context, userID string) bool
	SetActiveCircleFilter(value string)
	SetSelectedDate(date time.Time)
}

// Server wires HTTP handlers.
type Server struct {
	engine Engine
	logger *slog.Logger
}

// NewRouter creates the HTTP router for the calendar API.
func NewRouter(engine Engine, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()
	srv := &Server{engine: engine, logger: logger}

	r.Get("/health", srv.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/events", srv.handleListEvents)
		r.Post("/events", srv.handleAddEvent)
		r.Delete("/events/{id}", srv.handleDeleteEvent)

		r.Get("/photos", srv.handleListPhotos)
		r.Post("/photos", srv.handleAddPhoto)
		r.Delete("/photos/{id}", srv.handleDeletePhoto)

		r.Get("/messages", srv.handleListMessages)
		r.Post("/messages", srv.handleAddMessage)

		r.Get("/day/{date}", srv.handleDayContent)

		r.Get("/circles", srv.handleListCircles)
		r.Get("/users", srv.handleListUsers)
		r.Get("/user", srv.handleCurrentUser)
		r.Put("/user/{id}", srv.handleSwitchUser)

		r.Get("/filter", srv.handleGetFilter)
		r.Put("/filter", srv.handleSetFilter)

		r.Get("/selected-date", srv.handleGetSelectedDate)
		r.Put("/selected-date", srv.handleSetSelectedDate)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleListEvents(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.VisibleEvents())
}

func (s *Server) handleAddEvent(w http.ResponseWriter, r *http.Request) {
	var draft calendar.EventDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	ev := s.engine.AddEvent(r.Context(), draft)
	s.writeJSON(w, http.StatusCreated, ev)
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	// Deleting an unknown id is a no-op, so deletion always succeeds.
	s.engine.DeleteEvent(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListPhotos(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.VisiblePhotos())
}

func (s *Server) handleAddPhoto(w http.ResponseWriter, r *http.Request) {
	var draft calendar.PhotoDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	ph := s.engine.AddPhoto(r.Context(), draft)
	s.writeJSON(w, http.StatusCreated, ph)
}

func (s *Server) handleDeletePhoto(w http.ResponseWriter, r *http.Request) {
	s.engine.DeletePhoto(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListMessages(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.VisibleMessages())
}

type addMessageRequest struct {
	Text     string `json:"text"`
	CircleID string `json:"circleId"`
}

func (s *Server) handleAddMessage(w http.ResponseWriter, r *http.Request) {
	var req addMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	msg, ok := s.engine.AddMessage(r.Context(), req.Text, req.CircleID)
	if !ok {
		// Blank text is silently rejected; the caller shows any validation.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	s.writeJSON(w, http.StatusCreated, msg)
}

func (s *Server) handleDayContent(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse("2006-01-02", chi.URLParam(r, "date"))
	if err != nil {
		http.Error(w, "invalid date, want yyyy-mm-dd", http.StatusBadRequest)
		return
	}
	s.writeJSON(w, http.StatusOK, s.engine.DayContent(date))
}

func (s *Server) handleListCircles(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.Circles())
}

func (s *Server) handleListUsers(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.Users())
}

func (s *Server) handleCurrentUser(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.CurrentUser())
}

func (s *Server) handleSwitchUser(w http.ResponseWriter, r *http.Request) {
	// Unknown ids are a no-op; the response is the identity now in effect.
	s.engine.SwitchUser(r.Context(), chi.URLParam(r, "id"))
	s.writeJSON(w, http.StatusOK, s.engine.CurrentUser())
}

type filterRequest struct {
	Filter string `json:"filter"`
}

func (s *Server) handleGetFilter(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, filterRequest{Filter: s.engine.ActiveCircleFilter()})
}

func (s *Server) handleSetFilter(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	s.engine.SetActiveCircleFilter(req.Filter)
	s.writeJSON(w, http.StatusOK, filterRequest{Filter: s.engine.ActiveCircleFilter()})
}

type selectedDateRequest struct {
	Date string `json:"date"`
}

func (s *Server) handleGetSelectedDate(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, selectedDateRequest{
		Date: s.engine.SelectedDate().Format(time.RFC3339),
	})
}

func (s *Server) handleSetSelectedDate(w http.ResponseWriter, r *http.Request) {
	var req selectedDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		date, err = time.Parse("2006-01-02", req.Date)
	}
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}
	s.engine.SetSelectedDate(date)
	s.writeJSON(w, http.StatusOK, selectedDateRequest{
		Date: s.engine.SelectedDate().Format(time.RFC3339),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}
