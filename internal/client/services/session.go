// Package services contains the application services of the blogging
// client: session management and the operations that keep the local post
// collection consistent with the remote store.
package services

import (
	"context"
	"fmt"

	"github.com/dkraev/inkpress/internal/client/remote"
	"github.com/dkraev/inkpress/internal/client/state"
	"github.com/dkraev/inkpress/internal/logging"
	"github.com/dkraev/inkpress/internal/models"
)

// SessionService manages the authenticated-user half of client state.
//
// Contract:
//   - Login: authenticate against the remote store; on success the returned
//     user becomes the current user, on failure prior state is untouched.
//   - Logout: best-effort remote invalidation; local state is always cleared.
//   - Signup: create an account, then log in with the same credentials.
//   - Restore: adopt an already-established remote session.
//   - CurrentUser: pure read.
type SessionService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	Signup(ctx context.Context, name, email, password string) (*models.User, error)
	Restore(ctx context.Context) (*models.User, error)
	CurrentUser() *models.User
	Close(ctx context.Context) error
}

type sessionService struct {
	store  remote.Store
	state  *state.App
	logger logging.Logger
}

// NewSessionService constructs a SessionService bound to the given remote
// store and state container.
func NewSessionService(store remote.Store, st *state.App, logger logging.Logger) SessionService {
	return &sessionService{store: store, state: st, logger: logger}
}

func (s *sessionService) Login(ctx context.Context, email, password string) (*models.User, error) {
	session, err := s.store.CreateSession(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	user := session.User
	if ctx.Err() == nil {
		s.state.SetUser(&user)
	}
	return &user, nil
}

// Logout invalidates the remote session and clears local state regardless
// of the remote outcome, so the client never stays "logged in" after a
// user-initiated logout.
func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.store.DeleteSession(ctx); err != nil {
		s.logger.Warn(ctx, "remote session invalidation failed", "error", err)
	}
	s.state.Clear()
	return nil
}

func (s *sessionService) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	if _, err := s.store.CreateAccount(ctx, name, email, password); err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	return s.Login(ctx, email, password)
}

func (s *sessionService) Restore(ctx context.Context) (*models.User, error) {
	user, err := s.store.CurrentAccount(ctx)
	if err != nil {
		return nil, fmt.Errorf("restoring session: %w", err)
	}
	if ctx.Err() == nil {
		s.state.SetUser(user)
	}
	return user, nil
}

func (s *sessionService) CurrentUser() *models.User {
	return s.state.CurrentUser()
}

func (s *sessionService) Close(ctx context.Context) error {
	return s.store.Close()
}
