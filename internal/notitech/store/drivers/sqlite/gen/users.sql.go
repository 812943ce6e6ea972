package gen

import (
	"context"
	"database/sql"
	"time"
)

const userColumns = `id, name, email, password_hash, password_version, security_question, security_answer,
       sign_in_count, app_usage_count, created_at, updated_at`

func scanUser(row interface{ Scan(...interface{}) error }) (User, error) {
	var i User
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.PasswordHash,
		&i.PasswordVersion,
		&i.SecurityQuestion,
		&i.SecurityAnswer,
		&i.SignInCount,
		&i.AppUsageCount,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createUser = `-- name: CreateUser :exec
INSERT INTO users (id, name, email, password_hash, password_version, security_question, security_answer, created_at, updated_at)
VALUES (?, ?, ?, ?, 1, ?, ?, ?, ?)
`

type CreateUserParams struct {
	ID               string
	Name             string
	Email            string
	PasswordHash     string
	SecurityQuestion sql.NullString
	SecurityAnswer   sql.NullString
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) error {
	_, err := q.db.ExecContext(ctx, createUser,
		arg.ID,
		arg.Name,
		arg.Email,
		arg.PasswordHash,
		arg.SecurityQuestion,
		arg.SecurityAnswer,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getUserByID = `-- name: GetUserByID :one
SELECT ` + userColumns + `
FROM users
WHERE id = ?
`

func (q *Queries) GetUserByID(ctx context.Context, id string) (User, error) {
	return scanUser(q.db.QueryRowContext(ctx, getUserByID, id))
}

const getUserByEmail = `-- name: GetUserByEmail :one
SELECT ` + userColumns + `
FROM users
WHERE email = ?
`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	return scanUser(q.db.QueryRowContext(ctx, getUserByEmail, email))
}

const getUserByEmailAndQuestion = `-- name: GetUserByEmailAndQuestion :one
SELECT ` + userColumns + `
FROM users
WHERE email = ? AND security_question = ?
`

type GetUserByEmailAndQuestionParams struct {
	Email            string
	SecurityQuestion sql.NullString
}

func (q *Queries) GetUserByEmailAndQuestion(ctx context.Context, arg GetUserByEmailAndQuestionParams) (User, error) {
	return scanUser(q.db.QueryRowContext(ctx, getUserByEmailAndQuestion, arg.Email, arg.SecurityQuestion))
}

const updateUserPasswordHash = `-- name: UpdateUserPasswordHash :one
UPDATE users
SET password_hash = ?, password_version = password_version + 1, updated_at = ?
WHERE id = ?
RETURNING password_version
`

type UpdateUserPasswordHashParams struct {
	PasswordHash string
	UpdatedAt    time.Time
	ID           string
}

func (q *Queries) UpdateUserPasswordHash(ctx context.Context, arg UpdateUserPasswordHashParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, updateUserPasswordHash, arg.PasswordHash, arg.UpdatedAt, arg.ID)
	var password_version int64
	err := row.Scan(&password_version)
	return password_version, err
}

const incrementUserSignInCount = `-- name: IncrementUserSignInCount :execrows
UPDATE users
SET sign_in_count = sign_in_count + 1
WHERE id = ?
`

func (q *Queries) IncrementUserSignInCount(ctx context.Context, id string) (int64, error) {
	result, err := q.db.ExecContext(ctx, incrementUserSignInCount, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const incrementUserAppUsageCount = `-- name: IncrementUserAppUsageCount :one
UPDATE users
SET app_usage_count = app_usage_count + 1
WHERE id = ?
RETURNING app_usage_count
`

func (q *Queries) IncrementUserAppUsageCount(ctx context.Context, id string) (int64, error) {
	row := q.db.QueryRowContext(ctx, incrementUserAppUsageCount, id)
	var app_usage_count int64
	err := row.Scan(&app_usage_count)
	return app_usage_count, err
}

const deleteUser = `-- name: DeleteUser :execrows
DELETE FROM users
WHERE id = ?
`

func (q *Queries) DeleteUser(ctx context.Context, id string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteUser, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
