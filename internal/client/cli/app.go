package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/wastewise/pickup/internal/client/api"
	"github.com/wastewise/pickup/internal/client/config"
	"github.com/wastewise/pickup/internal/client/repositories/snapshot"
	"github.com/wastewise/pickup/internal/client/services"
	"github.com/wastewise/pickup/internal/client/session"
	"github.com/wastewise/pickup/internal/logging"

	_ "modernc.org/sqlite"
)

// App holds the wired-up client: configuration, services, the session
// store, and the interactive input reader.
type App struct {
	config         *config.Config
	authService    services.AuthService
	profileService services.ProfileService
	bookingService services.BookingService
	session        *session.Session
	log            logging.Logger
	reader         *bufio.Reader
	closeDB        func() error
}

// NewApp wires all client components from the given configuration:
// local cache, HTTP gateway, session store, and services.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := snapshot.Open(ctx, c.CacheDSN)
	if err != nil {
		log.Error(ctx, "error initializing local cache", "error", err)
		return nil, err
	}
	repo := snapshot.NewSQLiteRepository(db)

	apiClient, err := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout)
	if err != nil {
		db.Close()
		return nil, err
	}

	sess := session.New(apiClient, repo, log)

	return &App{
		config:         c,
		authService:    services.NewAuthService(apiClient, sess),
		profileService: services.NewProfileService(apiClient, sess),
		bookingService: services.NewBookingService(apiClient, sess),
		session:        sess,
		log:            log,
		reader:         bufio.NewReader(os.Stdin),
		closeDB:        db.Close,
	}, nil
}

// Run restores the cached session, reconfirms it with the server, starts
// the background session watcher, and enters the REPL. It blocks until
// the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.closeDB()

	if err := a.session.Bootstrap(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed, starting signed out", "error", err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.session.Watch(watchCtx, a.config.SessionCheckInterval)

	if a.isLoggedIn() && !a.session.ProfileComplete() {
		// the account was created but setup never finished
		_ = a.CompleteSetup(ctx)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if id, ok := a.session.Identity(); ok {
		return "(" + id.Email + ")"
	}
	return ""
}
