package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/notitech/internal/notitech/domain"
	"github.com/aussiebroadwan/notitech/internal/notitech/store"
	"github.com/aussiebroadwan/notitech/pkg/idx"
)

type NoteService struct {
	Store store.Store
	Now   func() time.Time
}

type NoteInput struct {
	Title string
	Body  string
}

func (in NoteInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return invalid("title", "is required")
	}
	return nil
}

func (s *NoteService) List(ctx context.Context, userID string) ([]domain.Note, error) {
	notes, err := s.Store.Notes().ListNotes(ctx, userID)
	if err != nil {
		return nil, serverError(ctx, "list notes", err)
	}
	return notes, nil
}

// Search matches query as a substring of the note title.
func (s *NoteService) Search(ctx context.Context, userID, query string) ([]domain.Note, error) {
	notes, err := s.Store.Notes().SearchNotes(ctx, userID, query)
	if err != nil {
		return nil, serverError(ctx, "search notes", err)
	}
	return notes, nil
}

func (s *NoteService) Get(ctx context.Context, userID, id string) (domain.Note, error) {
	n, err := s.Store.Notes().GetNote(ctx, userID, id)
	if err != nil {
		return domain.Note{}, resourceError(ctx, "get note", err)
	}
	return n, nil
}

// Create stores a note and counts it in the user's statistics.
func (s *NoteService) Create(ctx context.Context, userID string, in NoteInput) (domain.Note, error) {
	if err := in.validate(); err != nil {
		return domain.Note{}, err
	}
	now := nowOrDefault(s.Now)
	n := domain.Note{
		ID:        idx.NewAt(now).String(),
		UserID:    userID,
		Title:     in.Title,
		Body:      in.Body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Notes().CreateNote(ctx, n); err != nil {
			return err
		}
		if err := tx.Statistics().EnsureStatistics(ctx, userID); err != nil {
			return err
		}
		return tx.Statistics().IncrementNotesCreated(ctx, userID)
	})
	if err != nil {
		return domain.Note{}, resourceError(ctx, "create note", err)
	}
	return s.Get(ctx, userID, n.ID)
}

func (s *NoteService) Update(ctx context.Context, userID, id string, in NoteInput) (domain.Note, error) {
	if err := in.validate(); err != nil {
		return domain.Note{}, err
	}
	n, err := s.Store.Notes().GetNote(ctx, userID, id)
	if err != nil {
		return domain.Note{}, resourceError(ctx, "get note", err)
	}
	n.Title, n.Body = in.Title, in.Body
	n.UpdatedAt = nowOrDefault(s.Now)
	if err := s.Store.Notes().UpdateNote(ctx, n); err != nil {
		return domain.Note{}, resourceError(ctx, "update note", err)
	}
	return s.Get(ctx, userID, id)
}

func (s *NoteService) Delete(ctx context.Context, userID, id string) error {
	if err := s.Store.Notes().DeleteNote(ctx, userID, id); err != nil {
		return resourceError(ctx, "delete note", err)
	}
	return nil
}

// resourceError maps a missing row to ErrNotFound. A user id that vanished
// between the gate and the write surfaces as a foreign-key failure, which
// the drivers also report as not found.
func resourceError(ctx context.Context, op string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return serverError(ctx, op, err)
}

func nowOrDefault(now func() time.Time) time.Time {
	if now != nil {
		return now()
	}
	return time.Now()
}
