package repository

import (
	"context"
	"database/sql"
	"errors"

	"notesapi/internal/models"
	"notesapi/internal/repository/db"
)

// ErrDuplicateUsername reports a registration conflict surfaced by the
// UNIQUE constraint on users.username.
var ErrDuplicateUsername = errors.New("username already registered")

// timeLayout is a fixed-width SQLite TIMESTAMP format. Fixed width keeps
// lexicographic ORDER BY equal to chronological order at nanosecond
// precision.
const timeLayout = "2006-01-02 15:04:05.000000000"

type Users interface {
	Create(ctx context.Context, username, passwordHash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
}

// Notes is the ownership-scoped note store. Every lookup and mutation is
// keyed by both note id and user id, so a note owned by someone else is
// indistinguishable from a note that does not exist.
type Notes interface {
	Create(ctx context.Context, userID int, title, content string) (*models.Note, error)
	List(ctx context.Context, userID int) ([]models.Note, error)
	GetByID(ctx context.Context, userID, noteID int) (*models.Note, error)
	Update(ctx context.Context, userID, noteID int, title, content string) (*models.Note, error)
	Delete(ctx context.Context, userID, noteID int) (bool, error)
	Search(ctx context.Context, userID int, query string) ([]models.Note, error)
}

type Repository struct {
	Users Users
	Notes Notes
}

func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		Users: NewUserSQLite(d),
		Notes: NewNoteSQLite(d),
	}
}

// InitDB opens the SQLite database file and ensures the schema exists.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
