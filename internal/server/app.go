// Package server initializes and runs the development login server. It
// seeds the account store, handles graceful shutdown, and starts the HTTP
// endpoint the client authenticates against.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/kashifkhan1545/fingerauth/internal/common"
	"github.com/kashifkhan1545/fingerauth/internal/logging"
	"github.com/kashifkhan1545/fingerauth/internal/server/config"
	"github.com/kashifkhan1545/fingerauth/internal/server/httpserver"
	"github.com/kashifkhan1545/fingerauth/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *users.Service
}

func NewApp(c *config.Config) (*App, error) {

	slog := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slog)

	if c.SecretKey == "" {
		// Tokens do not survive a restart with a generated key.
		key, err := common.MakeRandHexString(32)
		if err != nil {
			return nil, fmt.Errorf("secret key init error: %w", err)
		}
		c.SecretKey = key
	}

	us := users.NewService(users.NewMemoryRepository(), c)

	if _, err := us.Register(context.Background(), c.SeedUserEmail, c.SeedUserPassword); err != nil {
		return nil, fmt.Errorf("seed account error: %w", err)
	}

	return &App{config: c, logger: logger, userService: us}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	h := httpserver.NewHandler(app.userService, app.logger)
	s := httpserver.NewServer(app.config.EndpointAddr, h.Router(), app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

}
