package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/aussiebroadwan/notitech/internal/notitech/domain"
)

type notesRepo struct {
	db DBTX
}

const noteColumns = `id, user_id, title, body, created_at, updated_at`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func scanNotes(rows *sql.Rows, err error) ([]domain.Note, error) {
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []domain.Note{}
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Body, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *notesRepo) ListNotes(ctx context.Context, userID string) ([]domain.Note, error) {
	return scanNotes(r.db.QueryContext(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE user_id = $1 ORDER BY created_at DESC, id DESC`, userID))
}

func (r *notesRepo) SearchNotes(ctx context.Context, userID, query string) ([]domain.Note, error) {
	return scanNotes(r.db.QueryContext(ctx,
		`SELECT `+noteColumns+` FROM notes
		 WHERE user_id = $1 AND title ILIKE '%' || $2 || '%'
		 ORDER BY created_at DESC, id DESC`,
		userID, likeEscaper.Replace(query)))
}

func (r *notesRepo) GetNote(ctx context.Context, userID, id string) (domain.Note, error) {
	var n domain.Note
	err := r.db.QueryRowContext(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = $1 AND user_id = $2`, id, userID,
	).Scan(&n.ID, &n.UserID, &n.Title, &n.Body, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return domain.Note{}, mapErr(err)
	}
	return n, nil
}

func (r *notesRepo) CreateNote(ctx context.Context, n domain.Note) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notes (id, user_id, title, body, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		n.ID, n.UserID, n.Title, n.Body, n.CreatedAt.UTC(), n.UpdatedAt.UTC())
	return mapErr(err)
}

func (r *notesRepo) UpdateNote(ctx context.Context, n domain.Note) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE notes SET title = $1, body = $2, updated_at = $3 WHERE id = $4 AND user_id = $5`,
		n.Title, n.Body, n.UpdatedAt.UTC(), n.ID, n.UserID))
}

func (r *notesRepo) DeleteNote(ctx context.Context, userID, id string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`DELETE FROM notes WHERE id = $1 AND user_id = $2`, id, userID))
}
