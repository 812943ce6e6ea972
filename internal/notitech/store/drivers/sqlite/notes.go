package sqlite

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/notitech/internal/notitech/domain"
	"github.com/aussiebroadwan/notitech/internal/notitech/store/drivers/sqlite/gen"
)

type notesRepo struct {
	q *gen.Queries
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *notesRepo) ListNotes(ctx context.Context, userID string) ([]domain.Note, error) {
	rows, err := r.q.ListNotesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapNotes(rows), nil
}

func (r *notesRepo) SearchNotes(ctx context.Context, userID, query string) ([]domain.Note, error) {
	rows, err := r.q.SearchNotesByTitle(ctx, gen.SearchNotesByTitleParams{
		UserID:  userID,
		Pattern: likeEscaper.Replace(query),
	})
	if err != nil {
		return nil, err
	}
	return mapNotes(rows), nil
}

func (r *notesRepo) GetNote(ctx context.Context, userID, id string) (domain.Note, error) {
	row, err := r.q.GetNote(ctx, gen.GetNoteParams{ID: id, UserID: userID})
	if err != nil {
		return domain.Note{}, mapNotFound(err)
	}
	return mapNote(row), nil
}

func (r *notesRepo) CreateNote(ctx context.Context, n domain.Note) error {
	err := r.q.CreateNote(ctx, gen.CreateNoteParams{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Body:      n.Body,
		CreatedAt: ts(n.CreatedAt),
		UpdatedAt: ts(n.UpdatedAt),
	})
	return mapConstraint(err)
}

func (r *notesRepo) UpdateNote(ctx context.Context, n domain.Note) error {
	return requireAffected(r.q.UpdateNote(ctx, gen.UpdateNoteParams{
		Title:     n.Title,
		Body:      n.Body,
		UpdatedAt: ts(n.UpdatedAt),
		ID:        n.ID,
		UserID:    n.UserID,
	}))
}

func (r *notesRepo) DeleteNote(ctx context.Context, userID, id string) error {
	return requireAffected(r.q.DeleteNote(ctx, gen.DeleteNoteParams{ID: id, UserID: userID}))
}

func mapNotes(rows []gen.Note) []domain.Note {
	out := make([]domain.Note, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapNote(row))
	}
	return out
}
