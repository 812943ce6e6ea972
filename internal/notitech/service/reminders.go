package service

import (
	"context"
	"strings"
	"time"

	"github.com/aussiebroadwan/notitech/internal/notitech/domain"
	"github.com/aussiebroadwan/notitech/internal/notitech/store"
	"github.com/aussiebroadwan/notitech/pkg/idx"
)

type ReminderService struct {
	Store store.Store
	Now   func() time.Time

	// Location defines "today". Defaults to time.Local.
	Location *time.Location
}

type ReminderInput struct {
	Title       string
	Description string
	DateTime    time.Time
}

func (in ReminderInput) validate() error {
	switch {
	case strings.TrimSpace(in.Title) == "":
		return invalid("title", "is required")
	case in.DateTime.IsZero():
		return invalid("dateTime", "is required")
	}
	return nil
}

func (s *ReminderService) List(ctx context.Context, userID string) ([]domain.Reminder, error) {
	rs, err := s.Store.Reminders().ListReminders(ctx, userID)
	if err != nil {
		return nil, serverError(ctx, "list reminders", err)
	}
	return rs, nil
}

// Today returns reminders falling in the current calendar day.
func (s *ReminderService) Today(ctx context.Context, userID string) ([]domain.Reminder, error) {
	from, to := dayBounds(nowOrDefault(s.Now), s.location())
	rs, err := s.Store.Reminders().ListRemindersBetween(ctx, userID, from, to)
	if err != nil {
		return nil, serverError(ctx, "list today's reminders", err)
	}
	return rs, nil
}

func (s *ReminderService) Get(ctx context.Context, userID, id string) (domain.Reminder, error) {
	r, err := s.Store.Reminders().GetReminder(ctx, userID, id)
	if err != nil {
		return domain.Reminder{}, resourceError(ctx, "get reminder", err)
	}
	return r, nil
}

// Create stores a reminder and counts it in the user's statistics.
func (s *ReminderService) Create(ctx context.Context, userID string, in ReminderInput) (domain.Reminder, error) {
	if err := in.validate(); err != nil {
		return domain.Reminder{}, err
	}
	now := nowOrDefault(s.Now)
	r := domain.Reminder{
		ID:          idx.NewAt(now).String(),
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		DateTime:    in.DateTime,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Reminders().CreateReminder(ctx, r); err != nil {
			return err
		}
		if err := tx.Statistics().EnsureStatistics(ctx, userID); err != nil {
			return err
		}
		return tx.Statistics().IncrementRemindersCreated(ctx, userID)
	})
	if err != nil {
		return domain.Reminder{}, resourceError(ctx, "create reminder", err)
	}
	return s.Get(ctx, userID, r.ID)
}

func (s *ReminderService) Update(ctx context.Context, userID, id string, in ReminderInput) (domain.Reminder, error) {
	if err := in.validate(); err != nil {
		return domain.Reminder{}, err
	}
	r, err := s.Store.Reminders().GetReminder(ctx, userID, id)
	if err != nil {
		return domain.Reminder{}, resourceError(ctx, "get reminder", err)
	}
	r.Title, r.Description, r.DateTime = in.Title, in.Description, in.DateTime
	r.UpdatedAt = nowOrDefault(s.Now)
	if err := s.Store.Reminders().UpdateReminder(ctx, r); err != nil {
		return domain.Reminder{}, resourceError(ctx, "update reminder", err)
	}
	return s.Get(ctx, userID, id)
}

func (s *ReminderService) Delete(ctx context.Context, userID, id string) error {
	if err := s.Store.Reminders().DeleteReminder(ctx, userID, id); err != nil {
		return resourceError(ctx, "delete reminder", err)
	}
	return nil
}

func (s *ReminderService) location() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.Local
}

// dayBounds returns [midnight, next midnight) of the day containing t in loc.
func dayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	t = t.In(loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}
