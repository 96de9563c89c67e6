package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"notesapi/internal/config"
	"notesapi/internal/models"
	"notesapi/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrUnauthenticated covers every credential and token failure: unknown
// username, wrong password, malformed/expired/forged token, or a token whose
// subject no longer resolves to a user. Callers must not distinguish between
// these cases in responses.
var ErrUnauthenticated = errors.New("could not validate credentials")

// ErrEmptyPassword rejects blank registration passwords before hashing.
var ErrEmptyPassword = errors.New("password is empty")

// AuthService handles password hashing and the stateless token lifecycle.
type AuthService struct {
	users      repository.Users
	signingKey []byte
	tokenTTL   time.Duration
	bcryptCost int
}

func NewAuthService(users repository.Users, cfg config.Auth) *AuthService {
	return &AuthService{
		users:      users,
		signingKey: []byte(cfg.SigningKey),
		tokenTTL:   cfg.TokenTTL,
		bcryptCost: cfg.BcryptCost,
	}
}

var _ Authorization = (*AuthService)(nil)

// SignUp hashes the password, creates the user, and returns an access token
// for the fresh account. A duplicate username surfaces as
// repository.ErrDuplicateUsername; no partial record is left behind.
func (s *AuthService) SignUp(ctx context.Context, username, password string) (string, error) {
	hash, err := s.hashPassword(password)
	if err != nil {
		return "", fmt.Errorf("invalid password: %w", err)
	}
	id, err := s.users.Create(ctx, username, hash)
	if err != nil {
		return "", err
	}
	return s.issueToken(id)
}

// GenerateToken validates credentials and returns a signed token. Unknown
// username and wrong password collapse into the same error.
func (s *AuthService) GenerateToken(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUnauthenticated
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrUnauthenticated
	}
	return s.issueToken(u.ID)
}

// ParseToken verifies signature and expiry and returns the subject user id.
// Every defect maps to ErrUnauthenticated.
func (s *AuthService) ParseToken(accessToken string) (int, error) {
	token, err := jwt.ParseWithClaims(accessToken, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return 0, ErrUnauthenticated
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, ErrUnauthenticated
	}
	id, err := strconv.Atoi(claims.Subject)
	if err != nil || id <= 0 {
		return 0, ErrUnauthenticated
	}
	return id, nil
}

// ResolveUser is the single funnel every protected request passes through:
// validate the token, then resolve its subject to an existing user.
func (s *AuthService) ResolveUser(ctx context.Context, accessToken string) (*models.User, error) {
	id, err := s.ParseToken(accessToken)
	if err != nil {
		return nil, err
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		// user deleted between issuance and use
		return nil, ErrUnauthenticated
	}
	return u, nil
}

// issueToken signs the minimal claim set: string subject plus expiry.
func (s *AuthService) issueToken(userID int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Subject:   strconv.Itoa(userID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
	})
	return token.SignedString(s.signingKey)
}

// helper: hash password safely
func (s *AuthService) hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash; constant-time, never panics on a
// malformed digest.
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
