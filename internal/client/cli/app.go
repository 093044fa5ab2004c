package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"time"

	"github.com/dmitrijs2005/bookdesk/internal/client/notify"
	"github.com/dmitrijs2005/bookdesk/internal/client/router"
	"github.com/dmitrijs2005/bookdesk/internal/client/services"
	"github.com/dmitrijs2005/bookdesk/internal/client/session"
	"github.com/dmitrijs2005/bookdesk/internal/logging"
)

// Session is what the CLI reads from the session store.
type Session interface {
	Snapshot() session.Snapshot
	CredentialExpiry() (time.Time, bool)
}

// Navigator moves between screens.
type Navigator interface {
	Navigate(ctx context.Context, path string) (router.Location, error)
	Current() router.Location
	Title() string
}

// Deps are the collaborators the CLI is built from. All of them are
// constructed by main.
type Deps struct {
	Session      Session
	Navigator    Navigator
	Notifier     notify.Notifier
	Auth         services.AuthService
	Books        services.BookService
	Borrows      services.BorrowService
	Categories   services.CategoryService
	Reservations services.ReservationService
	Users        services.UserService
	Log          logging.Logger

	// In is read line by line. Passwords are read without echo when In is
	// a terminal file such as os.Stdin.
	In  io.Reader
	Out io.Writer
}

type App struct {
	session      Session
	nav          Navigator
	notifier     notify.Notifier
	auth         services.AuthService
	books        services.BookService
	borrows      services.BorrowService
	categories   services.CategoryService
	reservations services.ReservationService
	users        services.UserService
	log          logging.Logger

	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(d Deps) *App {
	return &App{
		session:      d.Session,
		nav:          d.Navigator,
		notifier:     d.Notifier,
		auth:         d.Auth,
		books:        d.Books,
		borrows:      d.Borrows,
		categories:   d.Categories,
		reservations: d.Reservations,
		users:        d.Users,
		log:          d.Log,
		in:           d.In,
		reader:       bufio.NewReader(d.In),
		out:          d.Out,
	}
}

// Run opens the start screen and serves commands until the input ends or
// the user exits.
func (a *App) Run(ctx context.Context) {
	printlnFn(a.out, "Library Management System (type 'help' for commands)")

	a.open(ctx, "/")

	runREPL(ctx, a, a.reader)
}

func (a *App) isLoggedIn() bool { return a.session.Snapshot().IsLoggedIn() }

func (a *App) isAdmin() bool { return a.session.Snapshot().IsAdmin() }

// prompt shows the current page title and the signed-in user.
func (a *App) prompt() string {
	s := a.nav.Title()
	if snap := a.session.Snapshot(); snap.Profile != nil {
		s += " (" + snap.Profile.Username + ")"
	}
	return s + " > "
}

// open navigates to path and reports whether the transition went through.
// Guard notices have already been shown by the navigator.
func (a *App) open(ctx context.Context, path string) bool {
	if _, err := a.nav.Navigate(ctx, path); err != nil {
		if errors.Is(err, router.ErrRouteNotFound) {
			printlnFn(a.out, "No such screen:", path)
		}
		a.log.Debug(ctx, "navigation did not complete", "path", path, "err", err)
		return false
	}
	return true
}
