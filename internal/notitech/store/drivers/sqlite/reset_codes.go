package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/notitech/internal/notitech/domain"
	"github.com/aussiebroadwan/notitech/internal/notitech/store/drivers/sqlite/gen"
)

type resetCodesRepo struct {
	q *gen.Queries
}

func (r *resetCodesRepo) UpsertResetCode(ctx context.Context, rc domain.ResetCode) error {
	return r.q.UpsertResetCode(ctx, gen.UpsertResetCodeParams{
		Email:     rc.Email,
		CodeHash:  rc.CodeHash,
		ExpiresAt: tsExact(rc.ExpiresAt),
		CreatedAt: tsExact(rc.CreatedAt),
	})
}

func (r *resetCodesRepo) GetResetCode(ctx context.Context, email string) (domain.ResetCode, error) {
	row, err := r.q.GetResetCode(ctx, email)
	if err != nil {
		return domain.ResetCode{}, mapNotFound(err)
	}
	return mapResetCode(row), nil
}

func (r *resetCodesRepo) DeleteResetCode(ctx context.Context, email string) (int64, error) {
	return r.q.DeleteResetCode(ctx, email)
}

func (r *resetCodesRepo) DeleteExpiredResetCodes(ctx context.Context, now time.Time) (int64, error) {
	return r.q.DeleteExpiredResetCodes(ctx, tsExact(now))
}
