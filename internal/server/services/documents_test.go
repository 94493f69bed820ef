package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dkraev/inkpress/internal/common"
	"github.com/dkraev/inkpress/internal/server/models"
)

type fakeDocsRepo struct {
	docs  map[string]*models.Document
	order []string
}

func newFakeDocsRepo() *fakeDocsRepo {
	return &fakeDocsRepo{docs: make(map[string]*models.Document)}
}

func docKey(collection, id string) string {
	return collection + "/" + id
}

func (r *fakeDocsRepo) Create(ctx context.Context, doc *models.Document) (*models.Document, error) {
	key := docKey(doc.Collection, doc.ID)
	if _, ok := r.docs[key]; ok {
		return nil, fmt.Errorf("duplicate document: %w", common.ErrConflict)
	}
	d := *doc
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	r.docs[key] = &d
	r.order = append(r.order, key)
	return &d, nil
}

func (r *fakeDocsRepo) GetByID(ctx context.Context, collection, id string) (*models.Document, error) {
	d, ok := r.docs[docKey(collection, id)]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *d
	return &copied, nil
}

// List returns newest first, mirroring the DESC index on created_at.
func (r *fakeDocsRepo) List(ctx context.Context, collection string) ([]models.Document, error) {
	var out []models.Document
	for i := len(r.order) - 1; i >= 0; i-- {
		d, ok := r.docs[r.order[i]]
		if !ok || d.Collection != collection {
			continue
		}
		out = append(out, *d)
	}
	return out, nil
}

func (r *fakeDocsRepo) Update(ctx context.Context, doc *models.Document) (*models.Document, error) {
	key := docKey(doc.Collection, doc.ID)
	stored, ok := r.docs[key]
	if !ok {
		return nil, common.ErrNotFound
	}
	d := *doc
	d.CreatedAt = stored.CreatedAt
	d.UpdatedAt = time.Now()
	r.docs[key] = &d
	return &d, nil
}

func (r *fakeDocsRepo) DeleteByID(ctx context.Context, collection, id string) error {
	key := docKey(collection, id)
	if _, ok := r.docs[key]; !ok {
		return common.ErrNotFound
	}
	delete(r.docs, key)
	return nil
}

func TestDocumentCreateAndGet(t *testing.T) {
	svc := NewDocumentService(newFakeDocsRepo())
	ctx := context.Background()

	doc, err := svc.Create(ctx, "u1", "posts", "my-slug", map[string]any{"title": "My Post"})
	require.NoError(t, err)
	require.Equal(t, "u1", doc.OwnerID)

	got, err := svc.Get(ctx, "posts", "my-slug")
	require.NoError(t, err)
	require.Equal(t, "My Post", got.Fields["title"])
}

func TestDocumentCreate_DuplicateID(t *testing.T) {
	svc := NewDocumentService(newFakeDocsRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1", "posts", "my-slug", nil)
	require.NoError(t, err)

	// Another author picking the same slug collides too.
	_, err = svc.Create(ctx, "u2", "posts", "my-slug", nil)
	require.ErrorIs(t, err, common.ErrConflict)
}

func TestDocumentList_NewestFirst(t *testing.T) {
	svc := NewDocumentService(newFakeDocsRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1", "posts", "first", nil)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u1", "posts", "second", nil)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u1", "drafts", "unrelated", nil)
	require.NoError(t, err)

	docs, err := svc.List(ctx, "posts")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	require.Equal(t, "second", docs[0].ID)
	require.Equal(t, "first", docs[1].ID)
}

func TestDocumentUpdate_MergesFields(t *testing.T) {
	svc := NewDocumentService(newFakeDocsRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1", "posts", "my-slug", map[string]any{
		"title":  "My Post",
		"status": "draft",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "u1", "posts", "my-slug", map[string]any{"status": "published"})
	require.NoError(t, err)
	require.Equal(t, "published", updated.Fields["status"])
	require.Equal(t, "My Post", updated.Fields["title"], "untouched fields survive the merge")
}

func TestDocumentUpdate_NotOwner(t *testing.T) {
	svc := NewDocumentService(newFakeDocsRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1", "posts", "my-slug", nil)
	require.NoError(t, err)

	_, err = svc.Update(ctx, "u2", "posts", "my-slug", map[string]any{"title": "Hijacked"})
	require.ErrorIs(t, err, common.ErrForbidden)
}

func TestDocumentDelete(t *testing.T) {
	svc := NewDocumentService(newFakeDocsRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1", "posts", "my-slug", nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "u1", "posts", "my-slug"))

	_, err = svc.Get(ctx, "posts", "my-slug")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestDocumentDelete_NotOwner(t *testing.T) {
	svc := NewDocumentService(newFakeDocsRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1", "posts", "my-slug", nil)
	require.NoError(t, err)

	err = svc.Delete(ctx, "u2", "posts", "my-slug")
	require.ErrorIs(t, err, common.ErrForbidden)

	_, err = svc.Get(ctx, "posts", "my-slug")
	require.NoError(t, err, "document survives a forbidden delete")
}

func TestDocumentDelete_Unknown(t *testing.T) {
	svc := NewDocumentService(newFakeDocsRepo())

	err := svc.Delete(context.Background(), "u1", "posts", "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
}
