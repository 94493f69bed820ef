package sessions

import (
	"context"

	"github.com/dkraev/inkpress/internal/server/models"
)

type Repository interface {
	// Create inserts a new session row.
	Create(ctx context.Context, session *models.Session) error

	// GetByID returns the session with the given id.
	GetByID(ctx context.Context, id string) (*models.Session, error)

	// DeleteByID removes a session (token revocation).
	DeleteByID(ctx context.Context, id string) error
}
