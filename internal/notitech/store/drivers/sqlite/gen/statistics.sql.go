package gen

import (
	"context"
	"time"
)

const ensureStatistics = `-- name: EnsureStatistics :exec
INSERT INTO statistics (user_id, updated_at)
VALUES (?, ?)
ON CONFLICT (user_id) DO NOTHING
`

type EnsureStatisticsParams struct {
	UserID    string
	UpdatedAt time.Time
}

func (q *Queries) EnsureStatistics(ctx context.Context, arg EnsureStatisticsParams) error {
	_, err := q.db.ExecContext(ctx, ensureStatistics, arg.UserID, arg.UpdatedAt)
	return err
}

const getStatistics = `-- name: GetStatistics :one
SELECT s.user_id, s.notes_created, s.reminders_created, u.app_usage_count, u.sign_in_count, s.updated_at
FROM statistics s
JOIN users u ON u.id = s.user_id
WHERE s.user_id = ?
`

type GetStatisticsRow struct {
	UserID           string
	NotesCreated     int64
	RemindersCreated int64
	AppUsageCount    int64
	SignInCount      int64
	UpdatedAt        time.Time
}

func (q *Queries) GetStatistics(ctx context.Context, userID string) (GetStatisticsRow, error) {
	row := q.db.QueryRowContext(ctx, getStatistics, userID)
	var i GetStatisticsRow
	err := row.Scan(
		&i.UserID,
		&i.NotesCreated,
		&i.RemindersCreated,
		&i.AppUsageCount,
		&i.SignInCount,
		&i.UpdatedAt,
	)
	return i, err
}

const incrementNotesCreated = `-- name: IncrementNotesCreated :execrows
UPDATE statistics
SET notes_created = notes_created + 1, updated_at = ?
WHERE user_id = ?
`

type IncrementStatisticParams struct {
	UpdatedAt time.Time
	UserID    string
}

func (q *Queries) IncrementNotesCreated(ctx context.Context, arg IncrementStatisticParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, incrementNotesCreated, arg.UpdatedAt, arg.UserID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const incrementRemindersCreated = `-- name: IncrementRemindersCreated :execrows
UPDATE statistics
SET reminders_created = reminders_created + 1, updated_at = ?
WHERE user_id = ?
`

func (q *Queries) IncrementRemindersCreated(ctx context.Context, arg IncrementStatisticParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, incrementRemindersCreated, arg.UpdatedAt, arg.UserID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
