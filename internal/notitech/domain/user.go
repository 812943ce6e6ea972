package domain

import "time"

type User struct {
	ID               string
	Name             string
	Email            string
	PasswordHash     string // argon2 encoded, or bcrypt for imported accounts
	PasswordVersion  int64  // bumped on every password replacement
	SecurityQuestion string // SecurityQuestion key, empty when not set
	SecurityAnswer   string // hash of the trimmed, lower-cased answer
	SignInCount      int64
	AppUsageCount    int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasSecurityQuestion reports whether the user enrolled in the
// security-question recovery flow.
func (u User) HasSecurityQuestion() bool {
	return u.SecurityQuestion != "" && u.SecurityAnswer != ""
}
