package services

import (
	"context"
	"fmt"

	"github.com/dkraev/inkpress/internal/common"
	"github.com/dkraev/inkpress/internal/server/models"
	"github.com/dkraev/inkpress/internal/server/repositories/files"
)

// ObjectStore is the slice of the object storage backend the file service
// needs. Satisfied by storage.ObjectStore.
type ObjectStore interface {
	Put(ctx context.Context, bucket, id string, data []byte, contentType string) error
	Delete(ctx context.Context, bucket, id string) error
	PresignedGetURL(ctx context.Context, bucket, id string) (string, error)
}

type FileService struct {
	files   files.Repository
	objects ObjectStore
}

func NewFileService(files files.Repository, objects ObjectStore) *FileService {
	return &FileService{files: files, objects: objects}
}

// Upload records the file's metadata, then stores the bytes. The metadata
// row goes first so an id collision is caught before any object is written;
// if the object write then fails the row is rolled back.
func (s *FileService) Upload(ctx context.Context, ownerID, bucket, id string, data []byte, contentType string) (*models.File, error) {
	file := &models.File{
		Bucket:      bucket,
		ID:          id,
		OwnerID:     ownerID,
		Size:        int64(len(data)),
		ContentType: contentType,
	}

	created, err := s.files.Create(ctx, file)
	if err != nil {
		return nil, err
	}

	if err := s.objects.Put(ctx, bucket, id, data, contentType); err != nil {
		if delErr := s.files.DeleteByID(ctx, bucket, id); delErr != nil {
			return nil, fmt.Errorf("storing object: %w (metadata cleanup also failed: %v)", err, delErr)
		}
		return nil, fmt.Errorf("storing object: %w", err)
	}

	return created, nil
}

// Delete removes the object, then its metadata row. Only the owner may
// delete.
func (s *FileService) Delete(ctx context.Context, ownerID, bucket, id string) error {
	file, err := s.files.GetByID(ctx, bucket, id)
	if err != nil {
		return err
	}
	if file.OwnerID != ownerID {
		return fmt.Errorf("not the file owner: %w", common.ErrForbidden)
	}

	if err := s.objects.Delete(ctx, bucket, id); err != nil {
		return err
	}
	return s.files.DeleteByID(ctx, bucket, id)
}

// PreviewURL returns a short-lived URL for the stored object.
func (s *FileService) PreviewURL(ctx context.Context, bucket, id string) (string, error) {
	if _, err := s.files.GetByID(ctx, bucket, id); err != nil {
		return "", err
	}
	return s.objects.PresignedGetURL(ctx, bucket, id)
}
