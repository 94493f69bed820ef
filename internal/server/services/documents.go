package services

import (
	"context"
	"fmt"

	"github.com/dkraev/inkpress/internal/common"
	"github.com/dkraev/inkpress/internal/server/models"
	"github.com/dkraev/inkpress/internal/server/repositories/documents"
)

type DocumentService struct {
	docs documents.Repository
}

func NewDocumentService(docs documents.Repository) *DocumentService {
	return &DocumentService{docs: docs}
}

// Create writes a new document owned by ownerID. The id is caller-chosen;
// reusing one inside a collection yields common.ErrConflict.
func (s *DocumentService) Create(ctx context.Context, ownerID, collection, id string, fields map[string]any) (*models.Document, error) {
	if fields == nil {
		fields = map[string]any{}
	}
	doc := &models.Document{
		Collection: collection,
		ID:         id,
		OwnerID:    ownerID,
		Fields:     fields,
	}
	return s.docs.Create(ctx, doc)
}

func (s *DocumentService) Get(ctx context.Context, collection, id string) (*models.Document, error) {
	return s.docs.GetByID(ctx, collection, id)
}

func (s *DocumentService) List(ctx context.Context, collection string) ([]models.Document, error) {
	return s.docs.List(ctx, collection)
}

// Update merges the given fields into the stored document. Only the owner
// may update.
func (s *DocumentService) Update(ctx context.Context, ownerID, collection, id string, fields map[string]any) (*models.Document, error) {
	doc, err := s.docs.GetByID(ctx, collection, id)
	if err != nil {
		return nil, err
	}
	if doc.OwnerID != ownerID {
		return nil, fmt.Errorf("not the document owner: %w", common.ErrForbidden)
	}

	for k, v := range fields {
		doc.Fields[k] = v
	}

	return s.docs.Update(ctx, doc)
}

// Delete removes a document. Only the owner may delete.
func (s *DocumentService) Delete(ctx context.Context, ownerID, collection, id string) error {
	doc, err := s.docs.GetByID(ctx, collection, id)
	if err != nil {
		return err
	}
	if doc.OwnerID != ownerID {
		return fmt.Errorf("not the document owner: %w", common.ErrForbidden)
	}

	return s.docs.DeleteByID(ctx, collection, id)
}
