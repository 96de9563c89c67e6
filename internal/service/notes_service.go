package service

import (
	"context"
	"errors"
	"strings"

	"notesapi/internal/models"
	"notesapi/internal/repository"
)

// ErrNoteNotFound is returned both for ids that do not exist and for notes
// owned by another user, so existence of other users' notes is never
// disclosed.
var ErrNoteNotFound = errors.New("note not found")

// ErrEmptyTitle rejects notes whose title is blank after trimming.
var ErrEmptyTitle = errors.New("title is empty")

// NotesService enforces ownership scoping on every note operation.
type NotesService struct {
	notes repository.Notes
}

func NewNotesService(notes repository.Notes) *NotesService {
	return &NotesService{notes: notes}
}

var _ Notes = (*NotesService)(nil)

func (s *NotesService) Create(ctx context.Context, userID int, title, content string) (*models.Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	return s.notes.Create(ctx, userID, title, content)
}

func (s *NotesService) List(ctx context.Context, userID int) ([]models.Note, error) {
	return s.notes.List(ctx, userID)
}

func (s *NotesService) GetByID(ctx context.Context, userID, noteID int) (*models.Note, error) {
	n, err := s.notes.GetByID(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, ErrNoteNotFound
	}
	return n, nil
}

func (s *NotesService) Update(ctx context.Context, userID, noteID int, title, content string) (*models.Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	n, err := s.notes.Update(ctx, userID, noteID, title, content)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, ErrNoteNotFound
	}
	return n, nil
}

func (s *NotesService) Delete(ctx context.Context, userID, noteID int) error {
	deleted, err := s.notes.Delete(ctx, userID, noteID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNoteNotFound
	}
	return nil
}

func (s *NotesService) Search(ctx context.Context, userID int, query string) ([]models.Note, error) {
	return s.notes.Search(ctx, userID, query)
}
