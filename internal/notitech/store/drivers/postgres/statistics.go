package postgres

import (
	"context"

	"github.com/aussiebroadwan/notitech/internal/notitech/domain"
)

type statisticsRepo struct {
	db DBTX
}

func (r *statisticsRepo) EnsureStatistics(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO statistics (user_id, updated_at) VALUES ($1, $2) ON CONFLICT (user_id) DO NOTHING`,
		userID, nowUTC())
	return mapErr(err)
}

func (r *statisticsRepo) GetStatistics(ctx context.Context, userID string) (domain.Statistics, error) {
	var st domain.Statistics
	err := r.db.QueryRowContext(ctx,
		`SELECT s.user_id, s.notes_created, s.reminders_created, u.app_usage_count, u.sign_in_count, s.updated_at
		 FROM statistics s JOIN users u ON u.id = s.user_id
		 WHERE s.user_id = $1`,
		userID,
	).Scan(&st.UserID, &st.NotesCreated, &st.RemindersCreated, &st.AppUsageCount, &st.SignInCount, &st.UpdatedAt)
	if err != nil {
		return domain.Statistics{}, mapErr(err)
	}
	return st, nil
}

func (r *statisticsRepo) IncrementNotesCreated(ctx context.Context, userID string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE statistics SET notes_created = notes_created + 1, updated_at = $1 WHERE user_id = $2`,
		nowUTC(), userID))
}

func (r *statisticsRepo) IncrementRemindersCreated(ctx context.Context, userID string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE statistics SET reminders_created = reminders_created + 1, updated_at = $1 WHERE user_id = $2`,
		nowUTC(), userID))
}
