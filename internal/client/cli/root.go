package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	if u := a.sessions.CurrentUser(); u != nil {
		return fmt.Sprintf("(%s)", u.Name)
	}
	return ""
}

// Root runs the command loop. Each command drives one operation to
// completion before the prompt returns, so operations on a post are never
// concurrent with one another. Commands and form prompts share one reader,
// otherwise buffered read-ahead would swallow form input.
func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to Inkpress CLI (type 'help' for commands)")

	for {
		fmt.Printf("ink %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: (l)ist, drafts, search, view, new, edit, delete, logout, exit")
			} else {
				fmt.Println("Available commands: signup, login, exit")
			}

		case "signup":
			a.Signup(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "l", "list":
			a.list(ctx)
		case "drafts":
			a.drafts(ctx)
		case "search":
			a.search(ctx, strings.Join(args, " "))
		case "view":
			if len(args) == 0 {
				fmt.Println("Usage: view <slug>")
				continue
			}
			a.view(ctx, args[0])
		case "new":
			a.newPost(ctx)
		case "edit":
			if len(args) == 0 {
				fmt.Println("Usage: edit <slug>")
				continue
			}
			a.editPost(ctx, args[0])
		case "delete":
			if len(args) == 0 {
				fmt.Println("Usage: delete <slug>")
				continue
			}
			a.deletePost(ctx, args[0])
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
