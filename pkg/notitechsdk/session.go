package notitechsdk

import (
	"context"
	"net/http"
)

// Session makes requests on behalf of a signed-in user. Tokens are not
// refreshed; sign in again once a request fails with IsUnauthorized.
type Session struct {
	client *Client
	token  string
}

// Token returns the bearer token backing the session.
func (s *Session) Token() string { return s.token }

func (s *Session) do(ctx context.Context, method, path string, in, out any, expected int) error {
	return s.client.do(ctx, method, path, s.token, nil, in, out, expected)
}

func (s *Session) Me(ctx context.Context) (*MeResponse, error) {
	var me MeResponse
	if err := s.do(ctx, http.MethodGet, "/api/auth/me", nil, &me, http.StatusOK); err != nil {
		return nil, err
	}
	return &me, nil
}

// RecordAppUsage bumps the app-usage counter.
func (s *Session) RecordAppUsage(ctx context.Context) (int64, error) {
	var resp AppUsageResponse
	if err := s.do(ctx, http.MethodPost, "/api/auth/app-usage", nil, &resp, http.StatusOK); err != nil {
		return 0, err
	}
	return resp.AppUsageCount, nil
}

// RecordStatisticsUsage bumps the same counter through the statistics route.
func (s *Session) RecordStatisticsUsage(ctx context.Context) (int64, error) {
	var resp AppUsageResponse
	if err := s.do(ctx, http.MethodPost, "/api/statistics/app-usage", nil, &resp, http.StatusOK); err != nil {
		return 0, err
	}
	return resp.AppUsageCount, nil
}

func (s *Session) Statistics(ctx context.Context) (*Statistics, error) {
	var st Statistics
	if err := s.do(ctx, http.MethodGet, "/api/statistics", nil, &st, http.StatusOK); err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *Session) ListNotes(ctx context.Context) ([]Note, error) {
	var notes []Note
	if err := s.do(ctx, http.MethodGet, "/api/notes", nil, &notes, http.StatusOK); err != nil {
		return nil, err
	}
	return notes, nil
}

// SearchNotes finds notes whose title contains query.
func (s *Session) SearchNotes(ctx context.Context, query string) ([]Note, error) {
	var notes []Note
	if err := s.do(ctx, http.MethodGet, "/api/notes/search/"+escape(query), nil, &notes, http.StatusOK); err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *Session) GetNote(ctx context.Context, id string) (*Note, error) {
	var n Note
	if err := s.do(ctx, http.MethodGet, "/api/notes/"+escape(id), nil, &n, http.StatusOK); err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *Session) CreateNote(ctx context.Context, req NoteRequest) (*Note, error) {
	var n Note
	if err := s.do(ctx, http.MethodPost, "/api/notes", req, &n, http.StatusCreated); err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *Session) UpdateNote(ctx context.Context, id string, req NoteRequest) (*Note, error) {
	var n Note
	if err := s.do(ctx, http.MethodPut, "/api/notes/"+escape(id), req, &n, http.StatusOK); err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *Session) DeleteNote(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "/api/notes/"+escape(id), nil, nil, http.StatusOK)
}

func (s *Session) ListReminders(ctx context.Context) ([]Reminder, error) {
	var rs []Reminder
	if err := s.do(ctx, http.MethodGet, "/api/reminders", nil, &rs, http.StatusOK); err != nil {
		return nil, err
	}
	return rs, nil
}

// TodayReminders lists reminders due on the server's current day.
func (s *Session) TodayReminders(ctx context.Context) ([]Reminder, error) {
	var rs []Reminder
	if err := s.do(ctx, http.MethodGet, "/api/reminders/today", nil, &rs, http.StatusOK); err != nil {
		return nil, err
	}
	return rs, nil
}

func (s *Session) GetReminder(ctx context.Context, id string) (*Reminder, error) {
	var r Reminder
	if err := s.do(ctx, http.MethodGet, "/api/reminders/"+escape(id), nil, &r, http.StatusOK); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Session) CreateReminder(ctx context.Context, req ReminderRequest) (*Reminder, error) {
	var r Reminder
	if err := s.do(ctx, http.MethodPost, "/api/reminders", req, &r, http.StatusCreated); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Session) UpdateReminder(ctx context.Context, id string, req ReminderRequest) (*Reminder, error) {
	var r Reminder
	if err := s.do(ctx, http.MethodPut, "/api/reminders/"+escape(id), req, &r, http.StatusOK); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Session) DeleteReminder(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "/api/reminders/"+escape(id), nil, nil, http.StatusOK)
}
