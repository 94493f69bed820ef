package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkraev/inkpress/internal/client/blog"
	"github.com/dkraev/inkpress/internal/models"
)

func newPopulated() *App {
	a := New()
	a.SetPosts([]blog.Post{
		{ID: "foo-bar", Title: "Foo Bar", Status: blog.StatusPublished, UserID: "u1"},
		{ID: "foo-draft", Title: "FOO draft", Status: blog.StatusDraft, UserID: "u1"},
		{ID: "other", Title: "Something else", Status: blog.StatusPublished, UserID: "u2"},
	})
	return a
}

func TestSetPosts_DropsDuplicateIDs(t *testing.T) {
	a := New()
	a.SetPosts([]blog.Post{
		{ID: "dup", Title: "first"},
		{ID: "dup", Title: "second"},
		{ID: "solo", Title: "third"},
	})

	posts := a.Posts()
	require.Len(t, posts, 2)
	require.Equal(t, "first", posts[0].Title)
	require.Equal(t, "solo", posts[1].ID)
}

func TestPrependPost(t *testing.T) {
	a := newPopulated()
	a.PrependPost(blog.Post{ID: "newest", Title: "Newest"})

	posts := a.Posts()
	require.Equal(t, "newest", posts[0].ID)
	require.Len(t, posts, 4)
}

func TestPrependPost_ExistingIDReplacesInPlace(t *testing.T) {
	a := newPopulated()
	a.PrependPost(blog.Post{ID: "foo-draft", Title: "Replaced"})

	posts := a.Posts()
	require.Len(t, posts, 3)
	require.Equal(t, "Replaced", posts[1].Title)
}

func TestReplacePost_PreservesPosition(t *testing.T) {
	a := newPopulated()
	a.ReplacePost(blog.Post{ID: "foo-draft", Title: "Edited", Status: blog.StatusPublished})

	posts := a.Posts()
	require.Equal(t, "foo-draft", posts[1].ID)
	require.Equal(t, "Edited", posts[1].Title)
}

func TestRemovePost(t *testing.T) {
	a := newPopulated()
	a.RemovePost("foo-bar")

	posts := a.Posts()
	require.Len(t, posts, 2)
	require.Equal(t, "foo-draft", posts[0].ID)
}

func TestFilteredPosts_SearchTermAndStatus(t *testing.T) {
	a := newPopulated()
	a.SetSearchTerm("foo")

	drafts := a.FilteredPosts(blog.StatusDraft)
	require.Len(t, drafts, 1)
	require.Equal(t, "foo-draft", drafts[0].ID)

	all := a.FilteredPosts("")
	require.Len(t, all, 2)
	// order matches collection order
	require.Equal(t, "foo-bar", all[0].ID)
	require.Equal(t, "foo-draft", all[1].ID)
}

func TestFilteredPosts_ReflectsLatestTerm(t *testing.T) {
	a := newPopulated()

	a.SetSearchTerm("foo")
	require.Len(t, a.FilteredPosts(""), 2)

	a.SetSearchTerm("else")
	filtered := a.FilteredPosts("")
	require.Len(t, filtered, 1)
	require.Equal(t, "other", filtered[0].ID)

	a.SetSearchTerm("")
	require.Len(t, a.FilteredPosts(""), 3)
}

func TestIsAuthor(t *testing.T) {
	post := blog.Post{ID: "p", UserID: "u1"}

	require.False(t, IsAuthor(post, nil))
	require.False(t, IsAuthor(post, &models.User{ID: "u2"}))
	require.True(t, IsAuthor(post, &models.User{ID: "u1"}))
}

func TestAuthorName(t *testing.T) {
	post := blog.Post{ID: "p", UserID: "u1"}

	require.Equal(t, "Anonymous", AuthorName(post, nil))
	require.Equal(t, "Anonymous", AuthorName(post, &models.User{ID: "u2", Name: "Someone"}))
	require.Equal(t, "Dana", AuthorName(post, &models.User{ID: "u1", Name: "Dana"}))
}

func TestClear(t *testing.T) {
	a := newPopulated()
	a.SetUser(&models.User{ID: "u1", Name: "Dana"})
	a.SetSearchTerm("foo")

	a.Clear()

	require.Nil(t, a.CurrentUser())
	require.Empty(t, a.Posts())
	require.Equal(t, "", a.SearchTerm())
}

func TestCurrentUser_ReturnsCopy(t *testing.T) {
	a := New()
	a.SetUser(&models.User{ID: "u1", Name: "Dana"})

	u := a.CurrentUser()
	u.Name = "changed"

	require.Equal(t, "Dana", a.CurrentUser().Name)
}
