package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"notesapi/internal/models"
)

type NoteSQLite struct {
	db *sql.DB
}

func NewNoteSQLite(db *sql.DB) *NoteSQLite {
	return &NoteSQLite{db: db}
}

var _ Notes = (*NoteSQLite)(nil)

const noteColumns = `id, title, content, user_id, created_at, updated_at`

const (
	insertNoteSQL = `INSERT INTO notes (title, content, user_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`
	selectNoteSQL = `SELECT ` + noteColumns + ` FROM notes WHERE id = ? AND user_id = ?`
	listNotesSQL  = `SELECT ` + noteColumns + ` FROM notes WHERE user_id = ? ORDER BY updated_at DESC, id DESC`
	searchNoteSQL = `SELECT ` + noteColumns + ` FROM notes WHERE user_id = ? AND (title LIKE ? ESCAPE '\' OR content LIKE ? ESCAPE '\') ORDER BY updated_at DESC, id DESC`
	updateNoteSQL = `UPDATE notes SET title = ?, content = ?, updated_at = ? WHERE id = ? AND user_id = ?`
	deleteNoteSQL = `DELETE FROM notes WHERE id = ? AND user_id = ?`
)

// Create inserts a note for userID with created_at == updated_at.
func (r *NoteSQLite) Create(ctx context.Context, userID int, title, content string) (*models.Note, error) {
	now := time.Now().UTC()
	stamp := now.Format(timeLayout)
	res, err := r.db.ExecContext(ctx, insertNoteSQL, title, content, userID, stamp, stamp)
	if err != nil {
		return nil, fmt.Errorf("insert note for user %d: %w", userID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id for note: %w", err)
	}
	return &models.Note{
		ID:        int(lastID),
		Title:     title,
		Content:   content,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// List returns all notes owned by userID, most recently updated first.
func (r *NoteSQLite) List(ctx context.Context, userID int) ([]models.Note, error) {
	rows, err := r.db.QueryContext(ctx, listNotesSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list notes for user %d: %w", userID, err)
	}
	return scanNotes(rows)
}

// GetByID fetches a note by id, scoped to userID. Returns (nil, nil) both
// when the id does not exist and when it belongs to another user.
func (r *NoteSQLite) GetByID(ctx context.Context, userID, noteID int) (*models.Note, error) {
	var n models.Note
	err := r.db.QueryRowContext(ctx, selectNoteSQL, noteID, userID).
		Scan(&n.ID, &n.Title, &n.Content, &n.UserID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select note %d: %w", noteID, err)
	}
	return &n, nil
}

// Update rewrites title/content and bumps updated_at, leaving created_at
// untouched. Returns (nil, nil) when no owned row matched.
func (r *NoteSQLite) Update(ctx context.Context, userID, noteID int, title, content string) (*models.Note, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, updateNoteSQL, title, content, now.Format(timeLayout), noteID, userID)
	if err != nil {
		return nil, fmt.Errorf("update note %d: %w", noteID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("get rows affected for note %d: %w", noteID, err)
	}
	if affected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, userID, noteID)
}

// Delete removes an owned note. Returns false when no owned row matched.
func (r *NoteSQLite) Delete(ctx context.Context, userID, noteID int) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteNoteSQL, noteID, userID)
	if err != nil {
		return false, fmt.Errorf("delete note %d: %w", noteID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("get rows affected for note %d: %w", noteID, err)
	}
	return affected > 0, nil
}

// Search matches the query as a case-insensitive substring of title or
// content, scoped to userID, same ordering as List.
func (r *NoteSQLite) Search(ctx context.Context, userID int, query string) ([]models.Note, error) {
	pattern := "%" + escapeLike(query) + "%"
	rows, err := r.db.QueryContext(ctx, searchNoteSQL, userID, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("search notes for user %d: %w", userID, err)
	}
	return scanNotes(rows)
}

// escapeLike makes LIKE metacharacters in user input match literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func scanNotes(rows *sql.Rows) ([]models.Note, error) {
	defer rows.Close()

	out := make([]models.Note, 0, 16)
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.UserID, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		n.CreatedAt = n.CreatedAt.UTC()
		n.UpdatedAt = n.UpdatedAt.UTC()
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
