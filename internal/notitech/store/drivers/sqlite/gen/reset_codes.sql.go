package gen

import (
	"context"
	"time"
)

const upsertResetCode = `-- name: UpsertResetCode :exec
INSERT INTO password_reset_codes (email, code_hash, expires_at, created_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (email) DO UPDATE
SET code_hash = excluded.code_hash,
    expires_at = excluded.expires_at,
    created_at = excluded.created_at
`

type UpsertResetCodeParams struct {
	Email     string
	CodeHash  string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (q *Queries) UpsertResetCode(ctx context.Context, arg UpsertResetCodeParams) error {
	_, err := q.db.ExecContext(ctx, upsertResetCode,
		arg.Email,
		arg.CodeHash,
		arg.ExpiresAt,
		arg.CreatedAt,
	)
	return err
}

const getResetCode = `-- name: GetResetCode :one
SELECT email, code_hash, expires_at, created_at
FROM password_reset_codes
WHERE email = ?
`

func (q *Queries) GetResetCode(ctx context.Context, email string) (PasswordResetCode, error) {
	row := q.db.QueryRowContext(ctx, getResetCode, email)
	var i PasswordResetCode
	err := row.Scan(
		&i.Email,
		&i.CodeHash,
		&i.ExpiresAt,
		&i.CreatedAt,
	)
	return i, err
}

const deleteResetCode = `-- name: DeleteResetCode :execrows
DELETE FROM password_reset_codes
WHERE email = ?
`

func (q *Queries) DeleteResetCode(ctx context.Context, email string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteResetCode, email)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteExpiredResetCodes = `-- name: DeleteExpiredResetCodes :execrows
DELETE FROM password_reset_codes
WHERE expires_at <= ?
`

func (q *Queries) DeleteExpiredResetCodes(ctx context.Context, now time.Time) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteExpiredResetCodes, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
