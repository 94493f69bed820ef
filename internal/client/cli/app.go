// Package cli implements the interactive Inkpress client: a small REPL that
// drives the session and post services and prints their results.
package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/dkraev/inkpress/internal/client/config"
	"github.com/dkraev/inkpress/internal/client/remote"
	"github.com/dkraev/inkpress/internal/client/services"
	"github.com/dkraev/inkpress/internal/client/state"
	"github.com/dkraev/inkpress/internal/logging"
)

type App struct {
	config   *config.Config
	state    *state.App
	sessions services.SessionService
	posts    services.PostService
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	store := remote.NewHTTPStore(c.ServerEndpointAddr, c.RequestTimeout)
	st := state.New()

	return &App{
		config:   c,
		state:    st,
		sessions: services.NewSessionService(store, st, logger),
		posts:    services.NewPostService(store, st, logger),
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.sessions.Close(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.sessions.CurrentUser() != nil
}
