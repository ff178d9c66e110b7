package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kashifkhan1545/fingerauth/internal/client/biometric"
	"github.com/kashifkhan1545/fingerauth/internal/client/client"
	"github.com/kashifkhan1545/fingerauth/internal/client/config"
	"github.com/kashifkhan1545/fingerauth/internal/client/repositories/token"
	"github.com/kashifkhan1545/fingerauth/internal/client/session"
	"github.com/kashifkhan1545/fingerauth/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the session controller and its collaborators to a terminal.
type App struct {
	config     *config.Config
	controller *session.Controller
	api        client.Client
	db         *sql.DB
	reader     *bufio.Reader
	out        io.Writer
	log        logging.Logger
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := token.NewSQLiteRepository(db)

	deviceID, err := store.EnsureDeviceID(ctx)
	if err != nil {
		// The device header is best-effort; login works without it.
		logger.Warn(ctx, "cannot establish device id", "error", err)
		deviceID = ""
	}

	api := client.NewHTTPClient(c.ServerURL, deviceID, c.RequestTimeout)
	gate := biometric.NewExecGate(c.BiometricHelper)
	controller := session.NewController(store, api, gate, logger)

	app := &App{
		config:     c,
		controller: controller,
		api:        api,
		db:         db,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
		log:        logger,
	}
	controller.SetNotify(app.renderEvent)
	return app, nil
}

// renderEvent prints a session transition the way the mobile app surfaced
// alerts and navigation: the message first, then where the UI goes.
func (a *App) renderEvent(ev session.Event) {
	if ev.Message != "" {
		fmt.Fprintln(a.out, ev.Message)
	}
	switch ev.Nav {
	case session.NavHome:
		fmt.Fprintln(a.out, "→ home")
	case session.NavLogin:
		fmt.Fprintln(a.out, "→ login")
	}
}

func (a *App) isLoggedIn() bool {
	return a.controller.Current().State == session.StateLoggedIn
}

// Run bootstraps the session from the stored slot and enters the command
// loop. It returns when the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.close(ctx)

	if err := a.controller.Bootstrap(ctx); err != nil {
		a.log.Warn(ctx, "bootstrap failed", "error", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, scanner)
}

func (a *App) close(ctx context.Context) {
	if err := a.api.Close(); err != nil {
		a.log.Warn(ctx, "error closing api client", "error", err)
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn(ctx, "error closing database", "error", err)
	}
}
