// Package blog defines the client-side domain types for posts.
package blog

import (
	"strings"
	"time"

	"github.com/dkraev/inkpress/internal/models"
)

// Status marks a post as a work in progress or publicly visible.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Post is the client's view of one remote post document. ID doubles as the
// post's slug, since the slug is the document id.
type Post struct {
	ID            string
	Title         string
	Content       string
	FeaturedImage string
	Status        Status
	UserID        string
	CreatedAt     time.Time
}

// FromDocument maps a remote document onto a Post. Missing or mistyped
// fields are left zero-valued; the remote store owns the schema.
func FromDocument(d models.Document) Post {
	p := Post{ID: d.ID, CreatedAt: d.CreatedAt}
	if v, ok := d.Fields["title"].(string); ok {
		p.Title = v
	}
	if v, ok := d.Fields["content"].(string); ok {
		p.Content = v
	}
	if v, ok := d.Fields["featuredImage"].(string); ok {
		p.FeaturedImage = v
	}
	if v, ok := d.Fields["status"].(string); ok {
		p.Status = Status(v)
	}
	if v, ok := d.Fields["userId"].(string); ok {
		p.UserID = v
	}
	return p
}

// Fields maps the post back to remote document fields.
func (p Post) Fields() map[string]any {
	return map[string]any{
		"title":         p.Title,
		"content":       p.Content,
		"featuredImage": p.FeaturedImage,
		"status":        string(p.Status),
		"userId":        p.UserID,
	}
}

// ReadingTime estimates minutes to read the content at 200 words per minute,
// never less than one.
func (p Post) ReadingTime() int {
	words := len(strings.Fields(p.Content))
	minutes := (words + 199) / 200
	if minutes < 1 {
		return 1
	}
	return minutes
}
