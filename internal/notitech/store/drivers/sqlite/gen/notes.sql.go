package gen

import (
	"context"
	"database/sql"
	"time"
)

func scanNotes(rows *sql.Rows) ([]Note, error) {
	defer rows.Close()
	var items []Note
	for rows.Next() {
		var i Note
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.Title,
			&i.Body,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listNotesByUser = `-- name: ListNotesByUser :many
SELECT id, user_id, title, body, created_at, updated_at
FROM notes
WHERE user_id = ?
ORDER BY created_at DESC, id DESC
`

func (q *Queries) ListNotesByUser(ctx context.Context, userID string) ([]Note, error) {
	rows, err := q.db.QueryContext(ctx, listNotesByUser, userID)
	if err != nil {
		return nil, err
	}
	return scanNotes(rows)
}

const searchNotesByTitle = `-- name: SearchNotesByTitle :many
SELECT id, user_id, title, body, created_at, updated_at
FROM notes
WHERE user_id = ? AND title LIKE '%' || ? || '%' ESCAPE '\'
ORDER BY created_at DESC, id DESC
`

type SearchNotesByTitleParams struct {
	UserID  string
	Pattern string
}

func (q *Queries) SearchNotesByTitle(ctx context.Context, arg SearchNotesByTitleParams) ([]Note, error) {
	rows, err := q.db.QueryContext(ctx, searchNotesByTitle, arg.UserID, arg.Pattern)
	if err != nil {
		return nil, err
	}
	return scanNotes(rows)
}

const getNote = `-- name: GetNote :one
SELECT id, user_id, title, body, created_at, updated_at
FROM notes
WHERE id = ? AND user_id = ?
`

type GetNoteParams struct {
	ID     string
	UserID string
}

func (q *Queries) GetNote(ctx context.Context, arg GetNoteParams) (Note, error) {
	row := q.db.QueryRowContext(ctx, getNote, arg.ID, arg.UserID)
	var i Note
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Title,
		&i.Body,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createNote = `-- name: CreateNote :exec
INSERT INTO notes (id, user_id, title, body, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
`

type CreateNoteParams struct {
	ID        string
	UserID    string
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Queries) CreateNote(ctx context.Context, arg CreateNoteParams) error {
	_, err := q.db.ExecContext(ctx, createNote,
		arg.ID,
		arg.UserID,
		arg.Title,
		arg.Body,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateNote = `-- name: UpdateNote :execrows
UPDATE notes
SET title = ?, body = ?, updated_at = ?
WHERE id = ? AND user_id = ?
`

type UpdateNoteParams struct {
	Title     string
	Body      string
	UpdatedAt time.Time
	ID        string
	UserID    string
}

func (q *Queries) UpdateNote(ctx context.Context, arg UpdateNoteParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateNote,
		arg.Title,
		arg.Body,
		arg.UpdatedAt,
		arg.ID,
		arg.UserID,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteNote = `-- name: DeleteNote :execrows
DELETE FROM notes
WHERE id = ? AND user_id = ?
`

type DeleteNoteParams struct {
	ID     string
	UserID string
}

func (q *Queries) DeleteNote(ctx context.Context, arg DeleteNoteParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteNote, arg.ID, arg.UserID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
