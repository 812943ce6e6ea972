package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/notitech/internal/notitech/domain"
)

type remindersRepo struct {
	db DBTX
}

const reminderColumns = `id, user_id, title, description, date_time, created_at, updated_at`

func scanReminders(rows *sql.Rows, err error) ([]domain.Reminder, error) {
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []domain.Reminder{}
	for rows.Next() {
		var r domain.Reminder
		if err := rows.Scan(&r.ID, &r.UserID, &r.Title, &r.Description, &r.DateTime, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (r *remindersRepo) ListReminders(ctx context.Context, userID string) ([]domain.Reminder, error) {
	return scanReminders(r.db.QueryContext(ctx,
		`SELECT `+reminderColumns+` FROM reminders WHERE user_id = $1 ORDER BY date_time ASC, id ASC`, userID))
}

func (r *remindersRepo) ListRemindersBetween(ctx context.Context, userID string, from, to time.Time) ([]domain.Reminder, error) {
	return scanReminders(r.db.QueryContext(ctx,
		`SELECT `+reminderColumns+` FROM reminders
		 WHERE user_id = $1 AND date_time >= $2 AND date_time < $3
		 ORDER BY date_time ASC, id ASC`,
		userID, from.UTC(), to.UTC()))
}

func (r *remindersRepo) GetReminder(ctx context.Context, userID, id string) (domain.Reminder, error) {
	var rem domain.Reminder
	err := r.db.QueryRowContext(ctx,
		`SELECT `+reminderColumns+` FROM reminders WHERE id = $1 AND user_id = $2`, id, userID,
	).Scan(&rem.ID, &rem.UserID, &rem.Title, &rem.Description, &rem.DateTime, &rem.CreatedAt, &rem.UpdatedAt)
	if err != nil {
		return domain.Reminder{}, mapErr(err)
	}
	return rem, nil
}

func (r *remindersRepo) CreateReminder(ctx context.Context, rem domain.Reminder) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO reminders (id, user_id, title, description, date_time, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rem.ID, rem.UserID, rem.Title, rem.Description, rem.DateTime.UTC(), rem.CreatedAt.UTC(), rem.UpdatedAt.UTC())
	return mapErr(err)
}

func (r *remindersRepo) UpdateReminder(ctx context.Context, rem domain.Reminder) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE reminders SET title = $1, description = $2, date_time = $3, updated_at = $4
		 WHERE id = $5 AND user_id = $6`,
		rem.Title, rem.Description, rem.DateTime.UTC(), rem.UpdatedAt.UTC(), rem.ID, rem.UserID))
}

func (r *remindersRepo) DeleteReminder(ctx context.Context, userID, id string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`DELETE FROM reminders WHERE id = $1 AND user_id = $2`, id, userID))
}
