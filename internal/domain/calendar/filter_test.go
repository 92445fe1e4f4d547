package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testEvents() []Event {
	d := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	return []Event{
		{ID: "e1", Title: "Date Night", Date: d, CircleID: "1"},
		{ID: "e2", Title: "Soccer Practice", Date: d, CircleID: "2"},
		{ID: "e3", Title: "Birthday", Date: d, CircleID: "3"},
		{ID: "e4", Title: "Dentist", Date: d, CircleID: "2"},
	}
}

func TestFilterByCircle_All_ReturnsFullCollection(t *testing.T) {
	events := testEvents()
	got := FilterByCircle(events, FilterAll)
	require.Len(t, got, len(events))
	require.Equal(t, events, got)
}

func TestFilterByCircle_SpecificCircle_PreservesOrder(t *testing.T) {
	got := FilterByCircle(testEvents(), "2")
	require.Len(t, got, 2)
	require.Equal(t, "e2", got[0].ID)
	require.Equal(t, "e4", got[1].ID)
}

func TestFilterByCircle_UnknownCircle_Empty(t *testing.T) {
	got := FilterByCircle(testEvents(), "nope")
	require.Empty(t, got)
}

func TestFilterByCircle_UnknownEntityCircle_OnlyVisibleUnderAll(t *testing.T) {
	events := append(testEvents(), Event{ID: "e5", CircleID: "zz"})

	all := FilterByCircle(events, FilterAll)
	require.Len(t, all, 5)

	for _, circle := range []string{"1", "2", "3"} {
		for _, e := range FilterByCircle(events, circle) {
			require.NotEqual(t, "e5", e.ID)
		}
	}
}

func TestFilterByCircle_DoesNotMutateInput(t *testing.T) {
	events := testEvents()
	want := testEvents()

	FilterByCircle(events, "2")
	FilterByCircle(events, FilterAll)
	require.Equal(t, want, events)
}

func TestFilterByCircle_Messages(t *testing.T) {
	msgs := []Message{
		{ID: "m1", CircleID: "1", Text: "a"},
		{ID: "m2", CircleID: "2", Text: "b"},
	}
	got := FilterByCircle(msgs, "1")
	require.Len(t, got, 1)
	require.Equal(t, "m1", got[0].ID)
}
