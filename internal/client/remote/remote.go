// Package remote defines the contract the blogging client requires of the
// remote store: document CRUD against named collections, file CRUD against
// named buckets, and session management. The client never talks to the
// network except through this interface.
package remote

import (
	"context"

	"github.com/dkraev/inkpress/internal/models"
)

// Store is the remote document/file/session store.
//
// Error conventions (matched with errors.Is against internal/common):
//   - ErrUnauthorized: missing or rejected credentials/session.
//   - ErrNotFound: document or file does not exist.
//   - ErrConflict: a document with the same id already exists.
//
// All methods must honor context cancellation/timeouts.
type Store interface {
	// Accounts and sessions.
	CreateAccount(ctx context.Context, name, email, password string) (*models.User, error)
	CreateSession(ctx context.Context, email, password string) (*models.Session, error)
	DeleteSession(ctx context.Context) error
	CurrentAccount(ctx context.Context) (*models.User, error)

	// Documents.
	CreateDocument(ctx context.Context, collection, id string, fields map[string]any) (*models.Document, error)
	GetDocument(ctx context.Context, collection, id string) (*models.Document, error)
	ListDocuments(ctx context.Context, collection string) ([]models.Document, error)
	UpdateDocument(ctx context.Context, collection, id string, fields map[string]any) (*models.Document, error)
	DeleteDocument(ctx context.Context, collection, id string) error

	// Files.
	CreateFile(ctx context.Context, bucket, id string, data []byte, contentType string) (*models.FileRef, error)
	FilePreviewURL(bucket, id string) string
	DeleteFile(ctx context.Context, bucket, id string) error

	Close() error
}
