package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/notitech/internal/notitech/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this. Sub-repositories are exposed as methods so a
// transaction-scoped Store hands out repos bound to the same transaction.
type Store interface {
	Users() Users
	ResetCodes() ResetCodes
	Notes() Notes
	Reminders() Reminders
	Statistics() Statistics

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. The transaction is committed
	// when fn returns nil and rolled back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail matches the email exactly as stored.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByEmailAndQuestion returns the user only if their stored
	// security question key equals question.
	GetUserByEmailAndQuestion(ctx context.Context, email, question string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdatePasswordHash replaces the password hash, increments the
	// password version and bumps updated_at. Returns the new version.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) (int64, error)

	// IncrementSignInCount adds one to the sign-in counter.
	IncrementSignInCount(ctx context.Context, userID string) error

	// IncrementAppUsageCount adds one to the app-usage counter and returns the new value.
	IncrementAppUsageCount(ctx context.Context, userID string) (int64, error)

	// DeleteUser cascades to notes, reminders and statistics (per schema).
	DeleteUser(ctx context.Context, userID string) error
}

type ResetCodes interface {
	// UpsertResetCode stores rc, replacing any code already held for the
	// same email in a single atomic write.
	UpsertResetCode(ctx context.Context, rc domain.ResetCode) error

	// GetResetCode returns the code held for email, expired or not.
	GetResetCode(ctx context.Context, email string) (domain.ResetCode, error)

	// DeleteResetCode removes the code held for email and reports how many
	// were removed. Missing codes are not an error. Inside a transaction the
	// count decides which of two concurrent redeems consumed the code.
	DeleteResetCode(ctx context.Context, email string) (int64, error)

	// DeleteExpiredResetCodes removes codes that expired at or before now (housekeeping).
	DeleteExpiredResetCodes(ctx context.Context, now time.Time) (int64, error)
}

type Notes interface {
	// ListNotes returns the user's notes, newest first.
	ListNotes(ctx context.Context, userID string) ([]domain.Note, error)

	// SearchNotes returns notes whose title contains query, newest first.
	SearchNotes(ctx context.Context, userID, query string) ([]domain.Note, error)

	GetNote(ctx context.Context, userID, id string) (domain.Note, error)
	CreateNote(ctx context.Context, n domain.Note) error

	// UpdateNote rewrites title and body. ErrNotFound when the note is not
	// owned by n.UserID.
	UpdateNote(ctx context.Context, n domain.Note) error

	DeleteNote(ctx context.Context, userID, id string) error
}

type Reminders interface {
	// ListReminders returns the user's reminders ordered by date_time.
	ListReminders(ctx context.Context, userID string) ([]domain.Reminder, error)

	// ListRemindersBetween returns reminders with from <= date_time < to.
	ListRemindersBetween(ctx context.Context, userID string, from, to time.Time) ([]domain.Reminder, error)

	GetReminder(ctx context.Context, userID, id string) (domain.Reminder, error)
	CreateReminder(ctx context.Context, r domain.Reminder) error
	UpdateReminder(ctx context.Context, r domain.Reminder) error
	DeleteReminder(ctx context.Context, userID, id string) error
}

type Statistics interface {
	// EnsureStatistics creates the user's statistics row if missing.
	EnsureStatistics(ctx context.Context, userID string) error

	// GetStatistics returns the user's counters. ErrNotFound when either the
	// user or their statistics row is missing.
	GetStatistics(ctx context.Context, userID string) (domain.Statistics, error)

	IncrementNotesCreated(ctx context.Context, userID string) error
	IncrementRemindersCreated(ctx context.Context, userID string) error
}
