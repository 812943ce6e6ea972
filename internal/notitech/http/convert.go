package http

import (
	"github.com/aussiebroadwan/notitech/internal/notitech/domain"
	"github.com/aussiebroadwan/notitech/internal/notitech/service"
	"github.com/aussiebroadwan/notitech/pkg/notitechsdk"
)

func toUser(u domain.User) notitechsdk.User {
	return notitechsdk.User{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		SecurityQuestion: u.SecurityQuestion,
		CreatedAt:        u.CreatedAt,
	}
}

func toAuthResponse(s service.Session) notitechsdk.AuthResponse {
	return notitechsdk.AuthResponse{Token: s.Token, User: toUser(s.User)}
}

func toSecurityQuestion(q domain.SecurityQuestion) notitechsdk.SecurityQuestion {
	return notitechsdk.SecurityQuestion{Key: string(q), Question: q.Text()}
}

func toNote(n domain.Note) notitechsdk.Note {
	return notitechsdk.Note{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Body:      n.Body,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func toNotes(ns []domain.Note) []notitechsdk.Note {
	out := make([]notitechsdk.Note, 0, len(ns))
	for _, n := range ns {
		out = append(out, toNote(n))
	}
	return out
}

func toReminder(r domain.Reminder) notitechsdk.Reminder {
	return notitechsdk.Reminder{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		DateTime:    r.DateTime,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toReminders(rs []domain.Reminder) []notitechsdk.Reminder {
	out := make([]notitechsdk.Reminder, 0, len(rs))
	for _, r := range rs {
		out = append(out, toReminder(r))
	}
	return out
}

func toStatistics(st domain.Statistics) notitechsdk.Statistics {
	return notitechsdk.Statistics{
		UserID:           st.UserID,
		NotesCreated:     st.NotesCreated,
		RemindersCreated: st.RemindersCreated,
		AppUsageCount:    st.AppUsageCount,
		SignInCount:      st.SignInCount,
		UpdatedAt:        st.UpdatedAt,
	}
}
