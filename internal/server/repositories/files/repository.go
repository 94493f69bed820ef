package files

import (
	"context"

	"github.com/dkraev/inkpress/internal/server/models"
)

type Repository interface {
	// Create inserts a metadata row for an uploaded file; an existing
	// (bucket, id) pair yields common.ErrConflict.
	Create(ctx context.Context, file *models.File) (*models.File, error)

	// GetByID returns one file's metadata.
	GetByID(ctx context.Context, bucket, id string) (*models.File, error)

	// DeleteByID removes the metadata row.
	DeleteByID(ctx context.Context, bucket, id string) error
}
