// Package server wires the Inkpress backend together: database, migrations,
// object storage, services, and the HTTP endpoint, with graceful shutdown
// on SIGINT/SIGTERM.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dkraev/inkpress/internal/logging"
	"github.com/dkraev/inkpress/internal/server/config"
	"github.com/dkraev/inkpress/internal/server/httpapi"
	"github.com/dkraev/inkpress/internal/server/migrations"
	"github.com/dkraev/inkpress/internal/server/repositories/documents"
	"github.com/dkraev/inkpress/internal/server/repositories/files"
	"github.com/dkraev/inkpress/internal/server/repositories/sessions"
	"github.com/dkraev/inkpress/internal/server/repositories/users"
	"github.com/dkraev/inkpress/internal/server/services"
	"github.com/dkraev/inkpress/internal/server/storage"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := migrations.Run(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	objects, err := storage.NewObjectStore(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("object storage init error: %w", err)
	}

	accountService := services.NewAccountService(
		users.NewPostgresRepository(db), sessions.NewPostgresRepository(db), c)
	documentService := services.NewDocumentService(documents.NewPostgresRepository(db))
	fileService := services.NewFileService(files.NewPostgresRepository(db), objects)

	handler := httpapi.NewHandler(accountService, documentService, fileService, logger)
	server := httpapi.NewServer(c.EndpointAddr, handler.Routes(), logger)

	return &App{config: c, logger: logger, db: db, server: server}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
