package calendar

import "time"

const dayKeyFormat = "2006-01-02"

// DayKey returns the canonical day bucket for t: the date portion only,
// time of day ignored.
func DayKey(t time.Time) string {
	return t.Format(dayKeyFormat)
}

// DayContent groups the visible entities falling on a single calendar day.
type DayContent struct {
	Events []Event `json:"events"`
	Photos []Photo `json:"photos"`
}

// dayIndex answers "what falls on day D" in O(1) amortized. It is a pure
// derived cache over the post-filter collections, rebuilt after every
// mutation and filter change, never the source of truth.
type dayIndex struct {
	days map[string]*DayContent
}

func buildDayIndex(events []Event, photos []Photo) *dayIndex {
	idx := &dayIndex{days: make(map[string]*DayContent)}
	for _, e := range events {
		b := idx.bucket(DayKey(e.Date))
		b.Events = append(b.Events, e)
	}
	for _, p := range photos {
		b := idx.bucket(DayKey(p.Date))
		b.Photos = append(b.Photos, p)
	}
	return idx
}

func (idx *dayIndex) bucket(key string) *DayContent {
	b, ok := idx.days[key]
	if !ok {
		b = &DayContent{}
		idx.days[key] = b
	}
	return b
}

// lookup returns the day's content with insertion order preserved. Days with
// no entries, including days the index has never seen, get empty non-nil
// slices. The returned slices are copies; callers may not alias the index.
func (idx *dayIndex) lookup(date time.Time) DayContent {
	out := DayContent{Events: []Event{}, Photos: []Photo{}}
	b, ok := idx.days[DayKey(date)]
	if !ok {
		return out
	}
	out.Events = append(out.Events, b.Events...)
	out.Photos = append(out.Photos, b.Photos...)
	return out
}
