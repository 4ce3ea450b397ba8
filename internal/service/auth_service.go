package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"resource_api/internal/models"
	"resource_api/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when the user does not exist, so unknown users and
// wrong passwords cost roughly the same.
var dummyHash = sync.OnceValue(func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	return h
})

// AuthService validates Basic credentials against the credential store.
type AuthService struct {
	authRepo repository.Credentials
}

func NewAuthService(repo repository.Credentials) *AuthService {
	return &AuthService{authRepo: repo}
}

// Authenticate returns the identity for valid credentials. Unknown users and bad
// passwords both yield ErrInvalidCredentials; store failures are returned as is.
func (s *AuthService) Authenticate(ctx context.Context, creds Credentials) (models.Identity, error) {
	u, err := s.authRepo.GetByUsername(ctx, creds.Username)
	if err != nil {
		return models.Identity{}, fmt.Errorf("lookup credentials: %w", err)
	}
	if u == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(creds.Password))
		return models.Identity{}, &AuthError{Kind: AuthInvalid, Reason: "unknown user"}
	}

	if err := verifyPassword(u.PasswordHash, creds.Password); err != nil {
		return models.Identity{}, &AuthError{Kind: AuthInvalid, Reason: "password mismatch"}
	}

	return models.Identity{UserID: u.ID, Username: u.Username}, nil
}

// Register hashes password and provisions a new credential record.
func (s *AuthService) Register(ctx context.Context, username, password string) (int, error) {
	if strings.TrimSpace(username) == "" {
		return 0, errors.New("username is empty")
	}
	if strings.Contains(username, ":") {
		return 0, errors.New("username must not contain ':'")
	}
	hash, err := HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("invalid password: %w", err)
	}
	return s.authRepo.Create(ctx, username, hash)
}

// HashPassword returns a bcrypt verifier for password.
func HashPassword(password string) (string, error) {
	return hashPasswordCost(password, bcrypt.DefaultCost)
}

func hashPasswordCost(password string, cost int) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash (constant time inside bcrypt)
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
