package calendar

import "time"

// FilterAll is the sentinel active-filter value meaning "no restriction".
const FilterAll = "all"

// Circle is a named visibility tier, ordered by Level from most private (1)
// to least private. Circles are reference data configured at startup; the
// engine never creates or destroys them at runtime.
type Circle struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Description string `json:"description"`
}

// User is a family member. One user is the active identity at any time.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// Event is a calendar entry scoped to a circle. Immutable once created,
// except for deletion.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	CircleID    string    `json:"circleId"`
}

// Photo is a shared picture scoped to a circle. Same lifecycle as Event.
type Photo struct {
	ID       string    `json:"id"`
	URL      string    `json:"url"`
	Caption  string    `json:"caption"`
	Date     time.Time `json:"date"`
	CircleID string    `json:"circleId"`
}

// Message is a chat entry. Append-only: never edited or deleted.
type Message struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"senderId"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	CircleID  string    `json:"circleId"`
}

// EventDraft is the caller-supplied input for AddEvent. The engine accepts
// empty titles; input validation is the caller's responsibility.
type EventDraft struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	CircleID    string    `json:"circleId"`
}

// PhotoDraft is the caller-supplied input for AddPhoto. An empty URL is
// replaced with a generated placeholder rather than rejected.
type PhotoDraft struct {
	URL      string    `json:"url"`
	Caption  string    `json:"caption"`
	Date     time.Time `json:"date"`
	CircleID string    `json:"circleId"`
}

// State is the persisted blob: the three mutable collections plus the active
// identity. Date fields travel as RFC 3339 strings and revive as time.Time.
type State struct {
	Events      []Event   `json:"events"`
	Photos      []Photo   `json:"photos"`
	Messages    []Message `json:"messages"`
	CurrentUser *User     `json:"currentUser,omitempty"`
}

func (e Event) circle() string   { return e.CircleID }
func (p Photo) circle() string   { return p.CircleID }
func (m Message) circle() string { return m.CircleID }
