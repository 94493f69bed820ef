package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dkraev/inkpress/internal/client/blog"
	"github.com/dkraev/inkpress/internal/client/remote"
	"github.com/dkraev/inkpress/internal/client/state"
	"github.com/dkraev/inkpress/internal/common"
	"github.com/dkraev/inkpress/internal/logging"
)

const (
	// PostsCollection is the remote collection holding post documents.
	PostsCollection = "posts"
	// ImageBucket is the remote bucket holding featured images.
	ImageBucket = "post-images"
)

// PostForm carries the user's input for creating or updating a post.
// Image is the raw featured-image bytes; empty means "no new image".
type PostForm struct {
	Title     string
	Content   string
	Status    blog.Status
	Image     []byte
	ImageType string
}

// PostService keeps the local post collection consistent with the remote
// store. Each operation is a short protocol of remote calls whose step
// ordering, and whose partial-failure windows, are part of the contract:
//
//   - Create uploads the image first; a document-write failure after a
//     successful upload orphans the uploaded file (no cleanup, no retry).
//   - Update uploads the replacement image before deleting the old one, so
//     a post can never be left without a stored image; if the document
//     write then fails, the already-deleted old file stays deleted.
//   - Delete removes the document, then the file; the post leaves local
//     state only when both remote deletes succeeded.
//   - Fetch only hits the network while the local collection is empty.
//
// On any failure local state is left unmodified. A canceled context after
// the final remote call suppresses the state mutation only; the remote
// effect has already happened.
type PostService interface {
	Create(ctx context.Context, form PostForm) (*blog.Post, error)
	Update(ctx context.Context, existing blog.Post, form PostForm) (*blog.Post, error)
	Delete(ctx context.Context, post blog.Post) error
	Fetch(ctx context.Context) error
	Invalidate()
	PreviewURL(post blog.Post) string
}

type postService struct {
	store  remote.Store
	state  *state.App
	logger logging.Logger
}

func NewPostService(store remote.Store, st *state.App, logger logging.Logger) PostService {
	return &postService{store: store, state: st, logger: logger}
}

// Create validates the form, uploads the featured image, then writes the
// post document under a slug derived from the title. The new post is
// prepended to the local collection so newest-first ordering holds without
// a refetch.
func (s *postService) Create(ctx context.Context, form PostForm) (*blog.Post, error) {
	user := s.state.CurrentUser()
	if user == nil {
		return nil, fmt.Errorf("creating post: %w", common.ErrUnauthorized)
	}
	if len(form.Image) == 0 {
		return nil, fmt.Errorf("featured image is required: %w", common.ErrValidation)
	}

	fileID := uuid.NewString()
	file, err := s.store.CreateFile(ctx, ImageBucket, fileID, form.Image, form.ImageType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrFileUpload, err)
	}

	post := blog.Post{
		ID:            Slugify(form.Title),
		Title:         form.Title,
		Content:       form.Content,
		FeaturedImage: file.ID,
		Status:        form.Status,
		UserID:        user.ID,
	}
	if post.Status == "" {
		post.Status = blog.StatusDraft
	}

	doc, err := s.store.CreateDocument(ctx, PostsCollection, post.ID, post.Fields())
	if err != nil {
		// The uploaded file is orphaned here; there is no cleanup or retry.
		if errors.Is(err, common.ErrConflict) {
			return nil, fmt.Errorf("slug %q: %w", post.ID, common.ErrSlugTaken)
		}
		return nil, fmt.Errorf("creating post: %w", err)
	}

	created := blog.FromDocument(*doc)
	if ctx.Err() == nil {
		s.state.PrependPost(created)
	}
	return &created, nil
}

// Update writes changed fields to the existing document id; the slug is
// immutable after creation, a new title does not re-derive it. When a
// replacement image is supplied the old file is deleted only after the new
// upload succeeded.
func (s *postService) Update(ctx context.Context, existing blog.Post, form PostForm) (*blog.Post, error) {
	featured := existing.FeaturedImage

	if len(form.Image) > 0 {
		fileID := uuid.NewString()
		file, err := s.store.CreateFile(ctx, ImageBucket, fileID, form.Image, form.ImageType)
		if err != nil {
			// Old image untouched: the post keeps its stored file.
			return nil, fmt.Errorf("%w: %v", common.ErrFileUpload, err)
		}
		if err := s.store.DeleteFile(ctx, ImageBucket, existing.FeaturedImage); err != nil {
			s.logger.Warn(ctx, "old featured image not deleted",
				"post", existing.ID, "file", existing.FeaturedImage, "error", err)
		}
		featured = file.ID
	}

	fields := map[string]any{
		"title":         form.Title,
		"content":       form.Content,
		"status":        string(form.Status),
		"featuredImage": featured,
	}

	doc, err := s.store.UpdateDocument(ctx, PostsCollection, existing.ID, fields)
	if err != nil {
		return nil, fmt.Errorf("updating post: %w", err)
	}

	updated := blog.FromDocument(*doc)
	if ctx.Err() == nil {
		s.state.ReplacePost(updated)
	}
	return &updated, nil
}

// Delete removes the document, then its featured image. The two deletes are
// not atomic; if either fails the post stays in local state and the error
// is returned.
func (s *postService) Delete(ctx context.Context, post blog.Post) error {
	if err := s.store.DeleteDocument(ctx, PostsCollection, post.ID); err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}
	if err := s.store.DeleteFile(ctx, ImageBucket, post.FeaturedImage); err != nil {
		return fmt.Errorf("deleting featured image: %w", err)
	}
	if ctx.Err() == nil {
		s.state.RemovePost(post.ID)
	}
	return nil
}

// Fetch loads the full post list, newest first, replacing the local
// collection. It is a no-op while the collection is non-empty; Invalidate
// or a logout re-arms it.
func (s *postService) Fetch(ctx context.Context) error {
	if s.state.CurrentUser() == nil {
		return fmt.Errorf("fetching posts: %w", common.ErrUnauthorized)
	}
	if len(s.state.Posts()) > 0 {
		return nil
	}

	docs, err := s.store.ListDocuments(ctx, PostsCollection)
	if err != nil {
		return fmt.Errorf("fetching posts: %w", err)
	}

	posts := make([]blog.Post, 0, len(docs))
	for _, d := range docs {
		posts = append(posts, blog.FromDocument(d))
	}
	if ctx.Err() == nil {
		s.state.SetPosts(posts)
	}
	return nil
}

// Invalidate empties the local collection so the next Fetch hits the
// network again.
func (s *postService) Invalidate() {
	s.state.SetPosts(nil)
}

func (s *postService) PreviewURL(post blog.Post) string {
	return s.store.FilePreviewURL(ImageBucket, post.FeaturedImage)
}
