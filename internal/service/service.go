package service

import (
	"context"

	"notesapi/internal/config"
	"notesapi/internal/models"
	"notesapi/internal/repository"
)

// Authorization covers credential handling and token lifecycle: registration,
// login, and per-request identity resolution.
type Authorization interface {
	SignUp(ctx context.Context, username, password string) (string, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
	ResolveUser(ctx context.Context, accessToken string) (*models.User, error)
}

// Notes exposes note operations already scoped to an authenticated owner.
type Notes interface {
	Create(ctx context.Context, userID int, title, content string) (*models.Note, error)
	List(ctx context.Context, userID int) ([]models.Note, error)
	GetByID(ctx context.Context, userID, noteID int) (*models.Note, error)
	Update(ctx context.Context, userID, noteID int, title, content string) (*models.Note, error)
	Delete(ctx context.Context, userID, noteID int) error
	Search(ctx context.Context, userID int, query string) ([]models.Note, error)
}

type Service struct {
	Authorization
	Notes
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, authCfg config.Auth) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, authCfg),
		Notes:         NewNotesService(repos.Notes),
	}
}
