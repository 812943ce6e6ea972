package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/notitech/internal/notitech/domain"
	"github.com/aussiebroadwan/notitech/internal/notitech/store"
	"github.com/aussiebroadwan/notitech/internal/notitech/store/drivers/sqlite/gen"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	dsn string
}

// NewStore opens the sqlite database at dsn (a file path or ":memory:").
// Foreign keys are enforced on every connection.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", withDefaultParams(dsn))
	if err != nil {
		return nil, err
	}

	// sqlite allows one writer at a time, and every :memory: connection is
	// its own database, so the pool is pinned to a single connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		q:   gen.New(db),
		dsn: dsn,
	}, nil
}

func withDefaultParams(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	params := []string{}
	if !strings.Contains(dsn, "foreign_keys") {
		params = append(params, "_pragma=foreign_keys(1)")
	}
	if !strings.Contains(dsn, "busy_timeout") {
		params = append(params, "_pragma=busy_timeout(5000)")
	}
	if !strings.Contains(dsn, "_time_format") {
		params = append(params, "_time_format=sqlite")
	}
	if len(params) == 0 {
		return dsn
	}
	return dsn + sep + strings.Join(params, "&")
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Users() store.Users           { return &usersRepo{q: s.q} }
func (s *Store) ResetCodes() store.ResetCodes { return &resetCodesRepo{q: s.q} }
func (s *Store) Notes() store.Notes           { return &notesRepo{q: s.q} }
func (s *Store) Reminders() store.Reminders   { return &remindersRepo{q: s.q} }
func (s *Store) Statistics() store.Statistics { return &statisticsRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint turns a UNIQUE/PRIMARY KEY violation into store.ErrAlreadyExists.
func mapConstraint(err error) error {
	var serr *msqlite.Error
	if errors.As(err, &serr) {
		switch serr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return store.ErrAlreadyExists
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return store.ErrNotFound
		}
	}
	// Without extended result codes only the message tells them apart.
	if err != nil {
		msg := err.Error()
		switch {
		case strings.Contains(msg, "UNIQUE constraint failed"),
			strings.Contains(msg, "PRIMARY KEY constraint failed"):
			return store.ErrAlreadyExists
		case strings.Contains(msg, "FOREIGN KEY constraint failed"):
			return store.ErrNotFound
		}
	}
	return err
}

// requireAffected reports ErrNotFound for a write that matched no rows.
func requireAffected(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ts normalises timestamps before they are written. Second precision in UTC
// keeps the stored text lexically ordered, which range queries rely on.
func ts(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

// tsExact keeps sub-second precision for deadlines. The sqlite time format
// drops trailing zeros but the UTC offset that follows still sorts below
// any fraction digit, so the text stays lexically ordered.
func tsExact(t time.Time) time.Time {
	return t.UTC()
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

func mapUser(row gen.User) domain.User {
	return domain.User{
		ID:               row.ID,
		Name:             row.Name,
		Email:            row.Email,
		PasswordHash:     row.PasswordHash,
		PasswordVersion:  row.PasswordVersion,
		SecurityQuestion: mapNullString(row.SecurityQuestion),
		SecurityAnswer:   mapNullString(row.SecurityAnswer),
		SignInCount:      row.SignInCount,
		AppUsageCount:    row.AppUsageCount,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

func mapResetCode(row gen.PasswordResetCode) domain.ResetCode {
	return domain.ResetCode{
		Email:     row.Email,
		CodeHash:  row.CodeHash,
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
	}
}

func mapNote(row gen.Note) domain.Note {
	return domain.Note{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		Body:      row.Body,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func mapReminder(row gen.Reminder) domain.Reminder {
	return domain.Reminder{
		ID:          row.ID,
		UserID:      row.UserID,
		Title:       row.Title,
		Description: row.Description,
		DateTime:    row.DateTime,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

// nowUTC stamps updated_at columns the service does not supply.
var nowUTC = func() time.Time { return time.Now().UTC() }
