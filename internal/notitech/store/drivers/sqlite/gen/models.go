package gen

import (
	"database/sql"
	"time"
)

type Note struct {
	ID        string
	UserID    string
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PasswordResetCode struct {
	Email     string
	CodeHash  string
	ExpiresAt time.Time
	CreatedAt time.Time
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

type Statistic struct {
	UserID           string
	NotesCreated     int64
	RemindersCreated int64
	UpdatedAt        time.Time
}

type User struct {
	ID               string
	Name             string
	Email            string
	PasswordHash     string
	PasswordVersion  int64
	SecurityQuestion sql.NullString
	SecurityAnswer   sql.NullString
	SignInCount      int64
	AppUsageCount    int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
