package postgres

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/notitech/internal/notitech/domain"
)

type usersRepo struct {
	db DBTX
}

const userColumns = `id, name, email, password_hash, password_version, security_question, security_answer,
	sign_in_count, app_usage_count, created_at, updated_at`

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u        domain.User
		question sql.NullString
		answer   sql.NullString
	)
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.PasswordVersion,
		&question, &answer, &u.SignInCount, &u.AppUsageCount, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapErr(err)
	}
	u.SecurityQuestion = question.String
	u.SecurityAnswer = answer.String
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (r *usersRepo) GetUserByEmailAndQuestion(ctx context.Context, email, question string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1 AND security_question = $2`, email, question))
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, password_version, security_question, security_answer, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, 1, $5, $6, $7, $8)`,
		u.ID, u.Name, u.Email, u.PasswordHash,
		nullString(u.SecurityQuestion), nullString(u.SecurityAnswer),
		u.CreatedAt.UTC(), u.UpdatedAt.UTC(),
	)
	return mapErr(err)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID string, newHash string) (int64, error) {
	var version int64
	err := r.db.QueryRowContext(ctx,
		`UPDATE users SET password_hash = $1, password_version = password_version + 1, updated_at = $2
		 WHERE id = $3
		 RETURNING password_version`,
		newHash, nowUTC(), userID,
	).Scan(&version)
	if err != nil {
		return 0, mapErr(err)
	}
	return version, nil
}

func (r *usersRepo) IncrementSignInCount(ctx context.Context, userID string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE users SET sign_in_count = sign_in_count + 1 WHERE id = $1`, userID))
}

func (r *usersRepo) IncrementAppUsageCount(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`UPDATE users SET app_usage_count = app_usage_count + 1 WHERE id = $1 RETURNING app_usage_count`,
		userID,
	).Scan(&n)
	if err != nil {
		return 0, mapErr(err)
	}
	return n, nil
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	return requireAffected(r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID))
}
