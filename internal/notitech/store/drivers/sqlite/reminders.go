package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/notitech/internal/notitech/domain"
	"github.com/aussiebroadwan/notitech/internal/notitech/store/drivers/sqlite/gen"
)

type remindersRepo struct {
	q *gen.Queries
}

func (r *remindersRepo) ListReminders(ctx context.Context, userID string) ([]domain.Reminder, error) {
	rows, err := r.q.ListRemindersByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapReminders(rows), nil
}

func (r *remindersRepo) ListRemindersBetween(
	ctx context.Context,
	userID string,
	from, to time.Time,
) ([]domain.Reminder, error) {
	rows, err := r.q.ListRemindersBetween(ctx, gen.ListRemindersBetweenParams{
		UserID: userID,
		From:   ts(from),
		To:     ts(to),
	})
	if err != nil {
		return nil, err
	}
	return mapReminders(rows), nil
}

func (r *remindersRepo) GetReminder(ctx context.Context, userID, id string) (domain.Reminder, error) {
	row, err := r.q.GetReminder(ctx, gen.GetReminderParams{ID: id, UserID: userID})
	if err != nil {
		return domain.Reminder{}, mapNotFound(err)
	}
	return mapReminder(row), nil
}

func (r *remindersRepo) CreateReminder(ctx context.Context, rem domain.Reminder) error {
	err := r.q.CreateReminder(ctx, gen.CreateReminderParams{
		ID:          rem.ID,
		UserID:      rem.UserID,
		Title:       rem.Title,
		Description: rem.Description,
		DateTime:    ts(rem.DateTime),
		CreatedAt:   ts(rem.CreatedAt),
		UpdatedAt:   ts(rem.UpdatedAt),
	})
	return mapConstraint(err)
}

func (r *remindersRepo) UpdateReminder(ctx context.Context, rem domain.Reminder) error {
	return requireAffected(r.q.UpdateReminder(ctx, gen.UpdateReminderParams{
		Title:       rem.Title,
		Description: rem.Description,
		DateTime:    ts(rem.DateTime),
		UpdatedAt:   ts(rem.UpdatedAt),
		ID:          rem.ID,
		UserID:      rem.UserID,
	}))
}

func (r *remindersRepo) DeleteReminder(ctx context.Context, userID, id string) error {
	return requireAffected(r.q.DeleteReminder(ctx, gen.DeleteReminderParams{ID: id, UserID: userID}))
}

func mapReminders(rows []gen.Reminder) []domain.Reminder {
	out := make([]domain.Reminder, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapReminder(row))
	}
	return out
}
