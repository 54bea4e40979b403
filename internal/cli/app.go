package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/JehanPinto/SportsLink/internal/api"
	"github.com/JehanPinto/SportsLink/internal/config"
	"github.com/JehanPinto/SportsLink/internal/events"
	"github.com/JehanPinto/SportsLink/internal/logging"
	"github.com/JehanPinto/SportsLink/internal/services"
	"github.com/JehanPinto/SportsLink/internal/session"
	"github.com/JehanPinto/SportsLink/internal/storage"
	"github.com/JehanPinto/SportsLink/internal/store"

	_ "modernc.org/sqlite"
)

// App ties the store, the persistence coordinator and the API services to an
// interactive terminal session.
type App struct {
	config      *config.Config
	log         logging.Logger
	repos       *storage.Repositories
	coord       *session.Coordinator
	store       *store.Store
	authService services.AuthService
	sports      *services.SportsService
	reader      *bufio.Reader

	stopWatcher context.CancelFunc
	watcherDone chan struct{}
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	repos, err := storage.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	coord := session.New(session.Config{
		DB:     repos.DB,
		KV:     repos.KV,
		TTL:    c.SessionTTL,
		Logger: log,
	})

	as := services.NewAuthService(
		repos.Accounts,
		api.NewAuthClient(c.AuthBaseURL),
		[]byte(c.SecretKey),
		c.SessionTTL,
		log,
	)
	ss := services.NewSportsService(api.NewSportsClient(c.SportsBaseURL))

	return &App{
		config:      c,
		log:         log,
		repos:       repos,
		coord:       coord,
		store:       store.New(coord, log),
		authService: as,
		sports:      ss,
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores persisted state, starts the expiry watcher when a session
// survived the restart, and hands control to the REPL. It blocks until the
// user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		a.stopExpiryWatcher()
		a.store.Close()
		_ = a.repos.DB.Close()
	}()

	a.store.Load(ctx)

	if a.isLoggedIn() {
		st := a.store.State()
		a.log.Info(ctx, "restored session", "username", st.User.Username)
		a.startExpiryWatcher(ctx)
	}

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.store.State().IsAuthenticated()
}

// startExpiryWatcher launches a background poll that force-logs-out the
// moment the stored session passes its expiry instant. Safe to call when a
// watcher is already running; the previous one is stopped first.
func (a *App) startExpiryWatcher(ctx context.Context) {
	a.stopExpiryWatcher()

	wctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	a.stopWatcher = cancel
	a.watcherDone = done

	go func() {
		defer close(done)
		a.coord.StartExpiryWatcher(wctx, a.config.ExpiryCheckInterval, func() {
			a.store.Dispatch(events.LoggedOut{})
			fmt.Println("\nSession expired, you have been logged out.")
		})
	}()
}

// stopExpiryWatcher cancels the watcher and waits for its goroutine to
// exit, so no expiry callback can dispatch into a store that is shutting
// down.
func (a *App) stopExpiryWatcher() {
	if a.stopWatcher != nil {
		a.stopWatcher()
		<-a.watcherDone
		a.stopWatcher = nil
		a.watcherDone = nil
	}
}
