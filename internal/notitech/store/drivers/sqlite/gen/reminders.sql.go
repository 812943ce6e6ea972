package gen

import (
	"context"
	"database/sql"
	"time"
)

func scanReminders(rows *sql.Rows) ([]Reminder, error) {
	defer rows.Close()
	var items []Reminder
	for rows.Next() {
		var i Reminder
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.Title,
			&i.Description,
			&i.DateTime,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listRemindersByUser = `-- name: ListRemindersByUser :many
SELECT id, user_id, title, description, date_time, created_at, updated_at
FROM reminders
WHERE user_id = ?
ORDER BY date_time ASC, id ASC
`

func (q *Queries) ListRemindersByUser(ctx context.Context, userID string) ([]Reminder, error) {
	rows, err := q.db.QueryContext(ctx, listRemindersByUser, userID)
	if err != nil {
		return nil, err
	}
	return scanReminders(rows)
}

const listRemindersBetween = `-- name: ListRemindersBetween :many
SELECT id, user_id, title, description, date_time, created_at, updated_at
FROM reminders
WHERE user_id = ? AND date_time >= ? AND date_time < ?
ORDER BY date_time ASC, id ASC
`

type ListRemindersBetweenParams struct {
	UserID string
	From   time.Time
	To     time.Time
}

func (q *Queries) ListRemindersBetween(ctx context.Context, arg ListRemindersBetweenParams) ([]Reminder, error) {
	rows, err := q.db.QueryContext(ctx, listRemindersBetween, arg.UserID, arg.From, arg.To)
	if err != nil {
		return nil, err
	}
	return scanReminders(rows)
}

const getReminder = `-- name: GetReminder :one
SELECT id, user_id, title, description, date_time, created_at, updated_at
FROM reminders
WHERE id = ? AND user_id = ?
`

type GetReminderParams struct {
	ID     string
	UserID string
}

func (q *Queries) GetReminder(ctx context.Context, arg GetReminderParams) (Reminder, error) {
	row := q.db.QueryRowContext(ctx, getReminder, arg.ID, arg.UserID)
	var i Reminder
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Title,
		&i.Description,
		&i.DateTime,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createReminder = `-- name: CreateReminder :exec
INSERT INTO reminders (id, user_id, title, description, date_time, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

type CreateReminderParams struct {
	ID          string
	UserID      string
	Title       string
	Description string
	DateTime    time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (q *Queries) CreateReminder(ctx context.Context, arg CreateReminderParams) error {
	_, err := q.db.ExecContext(ctx, createReminder,
		arg.ID,
		arg.UserID,
		arg.Title,
		arg.Description,
		arg.DateTime,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateReminder = `-- name: UpdateReminder :execrows
UPDATE reminders
SET title = ?, description = ?, date_time = ?, updated_at = ?
WHERE id = ? AND user_id = ?
`

type UpdateReminderParams struct {
	Title       string
	Description string
	DateTime    time.Time
	UpdatedAt   time.Time
	ID          string
	UserID      string
}

func (q *Queries) UpdateReminder(ctx context.Context, arg UpdateReminderParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateReminder,
		arg.Title,
		arg.Description,
		arg.DateTime,
		arg.UpdatedAt,
		arg.ID,
		arg.UserID,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteReminder = `-- name: DeleteReminder :execrows
DELETE FROM reminders
WHERE id = ? AND user_id = ?
`

type DeleteReminderParams struct {
	ID     string
	UserID string
}

func (q *Queries) DeleteReminder(ctx context.Context, arg DeleteReminderParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteReminder, arg.ID, arg.UserID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
