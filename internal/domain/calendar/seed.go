package calendar

import (
	"fmt"
	"time"
)

// SeedCircles returns the built-in visibility tiers. Circle ids are stable
// configuration-time strings, not user-generated.
func SeedCircles() []Circle {
	return []Circle{
		{ID: "1", Name: "Couple", Level: 1, Description: "Just Mom & Dad"},
		{ID: "2", Name: "Nuclear Family", Level: 2, Description: "Mom, Dad & Kids"},
		{ID: "3", Name: "Extended Family", Level: 3, Description: "Grandparents, Aunts, Uncles"},
	}
}

// SeedUsers returns the built-in family members. The first entry is the
// default active identity.
func SeedUsers() []User {
	return []User{
		{ID: "u1", Name: "Dad", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Dad"},
		{ID: "u2", Name: "Mom", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Mom"},
		{ID: "u3", Name: "Grandma", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Grandma"},
	}
}

// SeedState returns the fallback dataset used when no persisted blob exists,
// anchored relative to now so the example content stays near "today".
func SeedState(now time.Time) *State {
	users := SeedUsers()
	return &State{
		Events: []Event{
			{ID: "e1", Title: "Date Night", Description: "Dinner at Mario's", Date: now.AddDate(0, 0, 2), CircleID: "1"},
			{ID: "e2", Title: "Soccer Practice", Description: "Bring snacks", Date: now, CircleID: "2"},
			{ID: "e3", Title: "Grandma's Birthday", Description: "Surprise party at the park", Date: now.AddDate(0, 0, 5), CircleID: "3"},
			{ID: "e4", Title: "Dentist Appointment", Description: "Checkup for everyone", Date: now.AddDate(0, 0, -3), CircleID: "2"},
		},
		Photos: []Photo{
			{ID: "p1", URL: "https://picsum.photos/id/1011/800/600", Caption: "Beautiful sunset", Date: now.AddDate(0, 0, 2), CircleID: "1"},
			{ID: "p2", URL: "https://picsum.photos/id/1015/800/600", Caption: "Soccer game win!", Date: now, CircleID: "2"},
			{ID: "p3", URL: "https://picsum.photos/id/1025/800/600", Caption: "Birthday cake", Date: now.AddDate(0, 0, 5), CircleID: "3"},
			{ID: "p4", URL: "https://picsum.photos/id/1025/800/600", Caption: "Throwback", Date: now.AddDate(0, 0, -10), CircleID: "3"},
		},
		Messages: []Message{
			{ID: "m1", SenderID: "u1", Text: "Reservations are set for 7pm.", Timestamp: now.AddDate(0, 0, -1), CircleID: "1"},
			{ID: "m2", SenderID: "u2", Text: "Can you pick up milk on the way home?", Timestamp: now, CircleID: "2"},
			{ID: "m3", SenderID: "u3", Text: "Looking forward to seeing everyone!", Timestamp: now.AddDate(0, 0, -2), CircleID: "3"},
		},
		CurrentUser: &users[0],
	}
}

func placeholderPhotoURL(seed string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/800/600", seed)
}
