package domain

import "time"

// ResetCode is the stored half of an emailed password-reset code. Only the
// fingerprint of the code is persisted; at most one exists per email.
type ResetCode struct {
	Email     string
	CodeHash  string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// ValidAt reports whether the code can still be redeemed at now.
func (c ResetCode) ValidAt(now time.Time) bool {
	return now.Before(c.ExpiresAt)
}
