package domain

import "time"

type Note struct {
	ID        string
	UserID    string
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Reminder struct {
	ID          string
	UserID      string
	Title       string
	Description string
	DateTime    time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Statistics is the per-user usage view. NotesCreated and RemindersCreated
// are kept in their own table; the sign-in and app-usage counters are read
// from the user record so both endpoints that bump app usage agree.
type Statistics struct {
	UserID           string
	NotesCreated     int64
	RemindersCreated int64
	AppUsageCount    int64
	SignInCount      int64
	UpdatedAt        time.Time
}
