package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dmitrijs2005/interviewprep/internal/client/client"
	"github.com/dmitrijs2005/interviewprep/internal/client/config"
	"github.com/dmitrijs2005/interviewprep/internal/client/identity"
	"github.com/dmitrijs2005/interviewprep/internal/client/profile"
	"github.com/dmitrijs2005/interviewprep/internal/client/services"
	"github.com/dmitrijs2005/interviewprep/internal/client/store"
	"github.com/dmitrijs2005/interviewprep/internal/client/ui"
	"github.com/dmitrijs2005/interviewprep/internal/client/widget"
	"github.com/dmitrijs2005/interviewprep/internal/filex"
	"github.com/dmitrijs2005/interviewprep/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const dbFileName = "prep.db"

type App struct {
	config  *config.Config
	db      *sql.DB
	log     logging.Logger
	out     io.Writer
	session services.SessionService

	identity *identity.Context
	profile  *profile.Controller
	widget   *widget.Widget
	bus      *ui.EventBus
	router   *ui.Router

	mu   sync.Mutex
	mode Mode
}

// NewApp opens the local database under c.DataDir and wires every client
// component together.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	dir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, filepath.Join(dir, dbFileName))
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	st := store.New(db, log)
	ident := identity.New()

	var session services.SessionService
	api := client.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, func(ctx context.Context) string {
		return session.Token(ctx)
	})
	session = services.NewSessionService(api, ident, st, log)

	a := newApp(c, log, os.Stdout, session, ident, profile.New(api, ident, st, log, c.MaxImageSize))
	a.db = db
	return a, nil
}

func newApp(c *config.Config, log logging.Logger, out io.Writer, session services.SessionService, ident *identity.Context, ctrl *profile.Controller) *App {
	a := &App{
		config:   c,
		log:      log,
		out:      out,
		session:  session,
		identity: ident,
		profile:  ctrl,
		bus:      ui.NewEventBus(),
		router:   ui.NewRouter(),
	}
	a.widget = widget.New(ident, session, a.router, a.bus, log)
	return a
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Close unmounts the views and closes the local database.
func (a *App) Close() {
	a.widget.Unmount()
	a.profile.Unmount()
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	_, ok := a.identity.Current()
	return ok
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(context.Background(), fmt.Sprintf("Switched to %s mode", mode))
	}
}

// StartOnlineStatusWatcher pings the server every interval and flips the
// prompt between online and offline. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	err := a.session.Ping(pingCtx)
	cancel()

	if err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}
