// Package services contains the server's application services: accounts and
// sessions, document CRUD with ownership checks, and file storage.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dkraev/inkpress/internal/common"
	"github.com/dkraev/inkpress/internal/server/auth"
	"github.com/dkraev/inkpress/internal/server/config"
	"github.com/dkraev/inkpress/internal/server/models"
	"github.com/dkraev/inkpress/internal/server/repositories/sessions"
	"github.com/dkraev/inkpress/internal/server/repositories/users"
)

type AccountService struct {
	users    users.Repository
	sessions sessions.Repository
	config   *config.Config
}

func NewAccountService(users users.Repository, sessions sessions.Repository, config *config.Config) *AccountService {
	return &AccountService{users: users, sessions: sessions, config: config}
}

// Register creates a new account. A duplicate email yields common.ErrConflict.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, fmt.Errorf("email already registered: %w", common.ErrConflict)
		}
		return nil, err
	}
	return created, nil
}

// Login verifies the credentials, records a session row, and returns a
// signed token bound to that session. Unknown emails and wrong passwords
// are indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", nil, fmt.Errorf("invalid credentials: %w", common.ErrUnauthorized)
		}
		return "", nil, err
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return "", nil, fmt.Errorf("invalid credentials: %w", common.ErrUnauthorized)
	}

	session := &models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.config.SessionValidityDuration),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", nil, err
	}

	token, err := auth.GenerateToken(user.ID, session.ID, []byte(s.config.SecretKey), s.config.SessionValidityDuration)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Logout revokes the session behind the token's jti.
func (s *AccountService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.DeleteByID(ctx, sessionID)
}

// Authenticate resolves a bearer token to its user. Revoked or expired
// sessions are rejected even when the token signature is still valid.
func (s *AccountService) Authenticate(ctx context.Context, token string) (*models.User, string, error) {
	userID, sessionID, err := auth.ParseToken(token, []byte(s.config.SecretKey))
	if err != nil {
		return nil, "", fmt.Errorf("%v: %w", err, common.ErrUnauthorized)
	}

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", fmt.Errorf("session revoked: %w", common.ErrUnauthorized)
		}
		return nil, "", err
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, "", fmt.Errorf("session expired: %w", common.ErrUnauthorized)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	return user, sessionID, nil
}
