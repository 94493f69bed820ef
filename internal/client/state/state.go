// Package state holds the client's in-memory session and post-collection
// state. The container is constructed explicitly at startup and passed to
// the services that are allowed to mutate it; presentation code only reads
// through the selectors, never mutates.
package state

import (
	"strings"
	"sync"

	"github.com/dkraev/inkpress/internal/client/blog"
	"github.com/dkraev/inkpress/internal/models"
)

// App is the single owner of mutable client state: the current user (nil
// when anonymous), the ordered post list (newest first), and the free-text
// search term. All access goes through its methods; the mutex keeps the
// container safe even though operations are serialized by the UI.
type App struct {
	mu         sync.Mutex
	user       *models.User
	posts      []blog.Post
	searchTerm string
}

func New() *App {
	return &App{}
}

// SetUser records the authenticated user. At most one current user exists at
// any time; a second login replaces the first.
func (a *App) SetUser(u *models.User) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if u == nil {
		a.user = nil
		return
	}
	copied := *u
	a.user = &copied
}

// Clear resets the container to its anonymous startup state.
func (a *App) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = nil
	a.posts = nil
	a.searchTerm = ""
}

// CurrentUser returns a copy of the current user, or nil when anonymous.
func (a *App) CurrentUser() *models.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.user == nil {
		return nil
	}
	copied := *a.user
	return &copied
}

// SetPosts replaces the whole collection. Duplicate ids are dropped,
// keeping the first occurrence, so the no-two-posts-with-one-id invariant
// holds regardless of what the remote returned.
func (a *App) SetPosts(posts []blog.Post) {
	a.mu.Lock()
	defer a.mu.Unlock()
	seen := make(map[string]struct{}, len(posts))
	deduped := make([]blog.Post, 0, len(posts))
	for _, p := range posts {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		deduped = append(deduped, p)
	}
	a.posts = deduped
}

// PrependPost puts a newly created post at the head of the list. If a post
// with the same id is already present it is replaced in place instead, so
// the id invariant is preserved.
func (a *App) PrependPost(p blog.Post) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.posts {
		if a.posts[i].ID == p.ID {
			a.posts[i] = p
			return
		}
	}
	a.posts = append([]blog.Post{p}, a.posts...)
}

// ReplacePost swaps the entry with a matching id, preserving its position.
// Unknown ids are ignored.
func (a *App) ReplacePost(p blog.Post) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.posts {
		if a.posts[i].ID == p.ID {
			a.posts[i] = p
			return
		}
	}
}

// RemovePost drops the entry with the given id, keeping order otherwise.
func (a *App) RemovePost(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.posts {
		if a.posts[i].ID == id {
			a.posts = append(a.posts[:i], a.posts[i+1:]...)
			return
		}
	}
}

// Posts returns a copy of the full ordered collection.
func (a *App) Posts() []blog.Post {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]blog.Post(nil), a.posts...)
}

// Post looks up one entry by id.
func (a *App) Post(id string) (blog.Post, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, p := range a.posts {
		if p.ID == id {
			return p, true
		}
	}
	return blog.Post{}, false
}

// SetSearchTerm updates the search term. It never triggers a fetch.
func (a *App) SetSearchTerm(term string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.searchTerm = term
}

func (a *App) SearchTerm() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.searchTerm
}

// FilteredPosts returns the posts whose title contains the current search
// term (case-insensitive), optionally restricted to a status; pass "" for
// any status. The result is derived on every call so it can never be stale.
func (a *App) FilteredPosts(status blog.Status) []blog.Post {
	a.mu.Lock()
	defer a.mu.Unlock()
	term := strings.ToLower(a.searchTerm)
	out := make([]blog.Post, 0, len(a.posts))
	for _, p := range a.posts {
		if status != "" && p.Status != status {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(p.Title), term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// IsAuthor reports whether user owns post. Anonymous readers own nothing.
func IsAuthor(post blog.Post, user *models.User) bool {
	if user == nil {
		return false
	}
	return post.UserID == user.ID
}

// AuthorName resolves the display name shown next to a post: the real name
// for the post's own author, an anonymized placeholder for everyone else.
func AuthorName(post blog.Post, user *models.User) string {
	if IsAuthor(post, user) {
		return user.Name
	}
	return "Anonymous"
}
