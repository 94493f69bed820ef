package users

import (
	"context"

	"github.com/dkraev/inkpress/internal/server/models"
)

type Repository interface {
	// Create inserts a new user; a duplicate email yields common.ErrConflict.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user with the given email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the user with the given id.
	GetByID(ctx context.Context, id string) (*models.User, error)
}
