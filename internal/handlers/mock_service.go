package handlers

import (
	"context"
	"net/http"

	"notesapi/internal/models"
	"notesapi/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpToken   string
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error
	resolveUser   *models.User
	resolveErr    error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
	lastResolveToken   string
}

func (m *mockAuth) SignUp(ctx context.Context, username, password string) (string, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpToken, m.signUpErr
}

func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}

func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

func (m *mockAuth) ResolveUser(ctx context.Context, token string) (*models.User, error) {
	m.lastResolveToken = token
	return m.resolveUser, m.resolveErr
}

type mockNotes struct {
	createNote *models.Note
	createErr  error
	listNotes  []models.Note
	listErr    error
	getNote    *models.Note
	getErr     error
	updateNote *models.Note
	updateErr  error
	deleteErr  error
	searchResp []models.Note
	searchErr  error

	lastUserID  int
	lastNoteID  int
	lastTitle   string
	lastContent string
	lastQuery   string
	deleteCalls int
}

func (m *mockNotes) Create(ctx context.Context, userID int, title, content string) (*models.Note, error) {
	m.lastUserID, m.lastTitle, m.lastContent = userID, title, content
	return m.createNote, m.createErr
}

func (m *mockNotes) List(ctx context.Context, userID int) ([]models.Note, error) {
	m.lastUserID = userID
	return m.listNotes, m.listErr
}

func (m *mockNotes) GetByID(ctx context.Context, userID, noteID int) (*models.Note, error) {
	m.lastUserID, m.lastNoteID = userID, noteID
	return m.getNote, m.getErr
}

func (m *mockNotes) Update(ctx context.Context, userID, noteID int, title, content string) (*models.Note, error) {
	m.lastUserID, m.lastNoteID, m.lastTitle, m.lastContent = userID, noteID, title, content
	return m.updateNote, m.updateErr
}

func (m *mockNotes) Delete(ctx context.Context, userID, noteID int) error {
	m.lastUserID, m.lastNoteID = userID, noteID
	m.deleteCalls++
	return m.deleteErr
}

func (m *mockNotes) Search(ctx context.Context, userID int, query string) ([]models.Note, error) {
	m.lastUserID, m.lastQuery = userID, query
	return m.searchResp, m.searchErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
