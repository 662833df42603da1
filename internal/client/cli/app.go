// Package cli implements the terminal dashboard: a REPL composing the auth
// gateway, the upload workflow, and the document collection into one
// user-facing surface.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	"github.com/docuscope/docuscope-cli/internal/client/api"
	"github.com/docuscope/docuscope-cli/internal/client/collection"
	"github.com/docuscope/docuscope-cli/internal/client/config"
	"github.com/docuscope/docuscope-cli/internal/client/services"
	"github.com/docuscope/docuscope-cli/internal/client/session"
	"github.com/docuscope/docuscope-cli/internal/client/upload"
	"github.com/docuscope/docuscope-cli/internal/logging"
	"github.com/spf13/afero"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// App is the dashboard orchestrator. It owns the UI-visible state (query
// text, upload surface, initial-list loading flag) and reacts to store and
// upload events to keep the visible list consistent.
type App struct {
	config   *config.Config
	logger   logging.Logger
	session  *session.Session
	auth     services.AuthService
	docs     services.DocumentService
	store    *collection.Store
	uploader *upload.Controller

	mode               Mode
	query              string
	loadingInitialList bool
	uploadSurfaceOpen  bool

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config, logger logging.Logger) *App {
	client := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout)
	sess := session.New()
	store := collection.NewStore(logger)

	a := &App{
		config:             c,
		logger:             logger,
		session:            sess,
		auth:               services.NewAuthService(client, sess),
		docs:               services.NewDocumentService(client, store, logger),
		store:              store,
		uploader:           upload.NewController(afero.NewOsFs(), client, store, logger),
		loadingInitialList: true,
		reader:             bufio.NewReader(os.Stdin),
		out:                os.Stdout,
	}

	// recompute the projected view on every collection change
	store.OnChange(a.renderProjection)
	return a
}

func (a *App) Run(ctx context.Context) {
	go a.StartOnlineStatusWatcher(ctx, a.config.HealthCheckInterval)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.Active()
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	if a.mode != mode {
		a.mode = mode
		a.logger.Info(ctx, "connectivity changed", "mode", mode)
	}
}

// StartOnlineStatusWatcher periodically probes the backend's health
// endpoint and flips the prompt indicator between online and offline.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.auth.Ping(probeCtx)
			cancel()

			if err != nil {
				a.setMode(ctx, ModeOffline)
			} else {
				a.setMode(ctx, ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
