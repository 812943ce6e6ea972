package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/notitech/internal/notitech/domain"
)

type resetCodesRepo struct {
	db DBTX
}

func (r *resetCodesRepo) UpsertResetCode(ctx context.Context, rc domain.ResetCode) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO password_reset_codes (email, code_hash, expires_at, created_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (email) DO UPDATE
		 SET code_hash = EXCLUDED.code_hash, expires_at = EXCLUDED.expires_at, created_at = EXCLUDED.created_at`,
		rc.Email, rc.CodeHash, rc.ExpiresAt.UTC(), rc.CreatedAt.UTC(),
	)
	return mapErr(err)
}

func (r *resetCodesRepo) GetResetCode(ctx context.Context, email string) (domain.ResetCode, error) {
	var rc domain.ResetCode
	err := r.db.QueryRowContext(ctx,
		`SELECT email, code_hash, expires_at, created_at FROM password_reset_codes WHERE email = $1`,
		email,
	).Scan(&rc.Email, &rc.CodeHash, &rc.ExpiresAt, &rc.CreatedAt)
	if err != nil {
		return domain.ResetCode{}, mapErr(err)
	}
	return rc, nil
}

// DeleteResetCode takes the row lock, so a concurrent redeem blocks here
// and then sees zero rows once the first commits.
func (r *resetCodesRepo) DeleteResetCode(ctx context.Context, email string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM password_reset_codes WHERE email = $1`, email)
	if err != nil {
		return 0, mapErr(err)
	}
	return res.RowsAffected()
}

func (r *resetCodesRepo) DeleteExpiredResetCodes(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM password_reset_codes WHERE expires_at <= $1`, now.UTC())
	if err != nil {
		return 0, mapErr(err)
	}
	return res.RowsAffected()
}
