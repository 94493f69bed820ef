package cli

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/dkraev/inkpress/internal/client/blog"
	"github.com/dkraev/inkpress/internal/client/services"
	"github.com/dkraev/inkpress/internal/client/state"
)

// ensureFetched loads the collection on first use; later calls are served
// from local state (the fetch-once guard lives in the service).
func (a *App) ensureFetched(ctx context.Context) bool {
	if err := a.posts.Fetch(ctx); err != nil {
		log.Printf("error: %v", err)
		return false
	}
	return true
}

func (a *App) printPosts(posts []blog.Post) {
	if len(posts) == 0 {
		fmt.Println("Not found!")
		return
	}
	user := a.sessions.CurrentUser()
	for _, p := range posts {
		fmt.Printf("%-32s  %-9s  %s\n", p.ID, p.Status, p.Title)
		fmt.Printf("%-32s  by %s, %d min read\n", "", state.AuthorName(p, user), p.ReadingTime())
	}
}

func (a *App) list(ctx context.Context) {
	if !a.ensureFetched(ctx) {
		return
	}
	a.printPosts(a.state.FilteredPosts(blog.StatusPublished))
}

func (a *App) drafts(ctx context.Context) {
	if !a.ensureFetched(ctx) {
		return
	}
	a.printPosts(a.state.FilteredPosts(blog.StatusDraft))
}

func (a *App) search(ctx context.Context, term string) {
	a.state.SetSearchTerm(term)
	if term == "" {
		fmt.Println("Search cleared")
		return
	}
	if !a.ensureFetched(ctx) {
		return
	}
	a.printPosts(a.state.FilteredPosts(""))
}

func (a *App) view(ctx context.Context, slug string) {
	if !a.ensureFetched(ctx) {
		return
	}
	post, ok := a.state.Post(slug)
	if !ok {
		fmt.Println("No such post:", slug)
		return
	}

	user := a.sessions.CurrentUser()
	fmt.Printf("%s\n", post.Title)
	fmt.Printf("by %s · %s · %d min read · %s\n",
		state.AuthorName(post, user), post.CreatedAt.Format("2 Jan 2006"), post.ReadingTime(), post.Status)
	fmt.Printf("image: %s\n\n", a.posts.PreviewURL(post))
	fmt.Println(post.Content)
	if state.IsAuthor(post, user) {
		fmt.Println("\n(edit/delete available: you are the author)")
	}
}

// readForm collects the shared create/edit inputs. For edits, existing
// carries default values and an empty image path keeps the current image.
func (a *App) readForm(existing *blog.Post) (services.PostForm, error) {
	form := services.PostForm{}

	title, err := getSimpleText(a.reader, "Post title", os.Stdout)
	if err != nil {
		return form, err
	}
	if title == "" && existing != nil {
		title = existing.Title
	}
	form.Title = title

	content, err := GetMultiline(a.reader, "Content", os.Stdout)
	if err != nil {
		return form, err
	}
	if content == "" && existing != nil {
		content = existing.Content
	}
	form.Content = content

	publish, err := getSimpleText(a.reader, "Publish now? (y/N)", os.Stdout)
	if err != nil {
		return form, err
	}
	form.Status = blog.StatusDraft
	if strings.EqualFold(publish, "y") {
		form.Status = blog.StatusPublished
	}

	prompt := "Featured image path"
	if existing != nil {
		prompt = "Featured image path (empty keeps the current image)"
	}
	imagePath, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return form, err
	}
	if imagePath != "" {
		data, err := os.ReadFile(imagePath)
		if err != nil {
			return form, fmt.Errorf("reading image: %w", err)
		}
		form.Image = data
		form.ImageType = http.DetectContentType(data)
	}

	return form, nil
}

func (a *App) newPost(ctx context.Context) {
	form, err := a.readForm(nil)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	post, err := a.posts.Create(ctx, form)
	if err != nil {
		log.Printf("Create unsuccessful: %s", err.Error())
		return
	}
	log.Printf("Created %q", post.ID)
}

func (a *App) editPost(ctx context.Context, slug string) {
	if !a.ensureFetched(ctx) {
		return
	}
	existing, ok := a.state.Post(slug)
	if !ok {
		fmt.Println("No such post:", slug)
		return
	}
	if !state.IsAuthor(existing, a.sessions.CurrentUser()) {
		fmt.Println("Only the author can edit this post")
		return
	}

	form, err := a.readForm(&existing)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	post, err := a.posts.Update(ctx, existing, form)
	if err != nil {
		log.Printf("Update unsuccessful: %s", err.Error())
		return
	}
	log.Printf("Updated %q", post.ID)
}

func (a *App) deletePost(ctx context.Context, slug string) {
	if !a.ensureFetched(ctx) {
		return
	}
	post, ok := a.state.Post(slug)
	if !ok {
		fmt.Println("No such post:", slug)
		return
	}
	if !state.IsAuthor(post, a.sessions.CurrentUser()) {
		fmt.Println("Only the author can delete this post")
		return
	}

	confirm, err := getSimpleText(a.reader, fmt.Sprintf("Delete %q? (y/N)", slug), os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if !strings.EqualFold(confirm, "y") {
		return
	}

	if err := a.posts.Delete(ctx, post); err != nil {
		log.Printf("Delete unsuccessful: %s", err.Error())
		return
	}
	log.Printf("Deleted %q", slug)
}
