package documents

import (
	"context"

	"github.com/dkraev/inkpress/internal/server/models"
)

type Repository interface {
	// Create inserts a new document; an existing (collection, id) pair
	// yields common.ErrConflict.
	Create(ctx context.Context, doc *models.Document) (*models.Document, error)

	// GetByID returns one document.
	GetByID(ctx context.Context, collection, id string) (*models.Document, error)

	// List returns all documents of a collection, newest first.
	List(ctx context.Context, collection string) ([]models.Document, error)

	// Update replaces the stored fields and bumps updated_at.
	Update(ctx context.Context, doc *models.Document) (*models.Document, error)

	// DeleteByID removes one document.
	DeleteByID(ctx context.Context, collection, id string) error
}
