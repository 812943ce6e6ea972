package sqlite

import (
	"context"

	"github.com/aussiebroadwan/notitech/internal/notitech/domain"
	"github.com/aussiebroadwan/notitech/internal/notitech/store/drivers/sqlite/gen"
)

type statisticsRepo struct {
	q *gen.Queries
}

func (r *statisticsRepo) EnsureStatistics(ctx context.Context, userID string) error {
	err := r.q.EnsureStatistics(ctx, gen.EnsureStatisticsParams{
		UserID:    userID,
		UpdatedAt: ts(nowUTC()),
	})
	return mapConstraint(err)
}

func (r *statisticsRepo) GetStatistics(ctx context.Context, userID string) (domain.Statistics, error) {
	row, err := r.q.GetStatistics(ctx, userID)
	if err != nil {
		return domain.Statistics{}, mapNotFound(err)
	}
	return domain.Statistics{
		UserID:           row.UserID,
		NotesCreated:     row.NotesCreated,
		RemindersCreated: row.RemindersCreated,
		AppUsageCount:    row.AppUsageCount,
		SignInCount:      row.SignInCount,
		UpdatedAt:        row.UpdatedAt,
	}, nil
}

func (r *statisticsRepo) IncrementNotesCreated(ctx context.Context, userID string) error {
	return requireAffected(r.q.IncrementNotesCreated(ctx, gen.IncrementStatisticParams{
		UpdatedAt: ts(nowUTC()),
		UserID:    userID,
	}))
}

func (r *statisticsRepo) IncrementRemindersCreated(ctx context.Context, userID string) error {
	return requireAffected(r.q.IncrementRemindersCreated(ctx, gen.IncrementStatisticParams{
		UpdatedAt: ts(nowUTC()),
		UserID:    userID,
	}))
}
