package router

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/bookdesk/internal/client/notify"
	"github.com/dmitrijs2005/bookdesk/internal/logging"
)

const maxRedirects = 8

// SessionView is the part of the session the guard reads.
type SessionView interface {
	IsLoggedIn() bool
	IsAdmin() bool
}

// Navigator owns the current location. Every transition goes through
// Decide; transitions are serialised.
type Navigator struct {
	table    *Table
	session  SessionView
	notifier notify.Notifier
	log      logging.Logger

	mu      sync.Mutex
	current Location
	title   string
}

// NewNavigator starts with no current location and the bare title.
func NewNavigator(table *Table, session SessionView, notifier notify.Notifier, log logging.Logger) *Navigator {
	return &Navigator{
		table:    table,
		session:  session,
		notifier: notifier,
		log:      log,
		title:    titleSuffix,
	}
}

// Navigate moves to path. When the guard redirects, the returned location is
// where navigation ended up and the error wraps ErrNavigationAborted.
func (n *Navigator) Navigate(ctx context.Context, path string) (Location, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.navigate(ctx, path, 0)
}

func (n *Navigator) navigate(ctx context.Context, path string, depth int) (Location, error) {
	if depth > maxRedirects {
		return n.current, fmt.Errorf("%w: at %s", ErrRedirectLoop, path)
	}

	loc, ok := n.table.Match(path)
	if !ok {
		return n.current, fmt.Errorf("%w: %s", ErrRouteNotFound, path)
	}
	if loc.Route.Redirect != "" {
		return n.navigate(ctx, loc.Route.Redirect, depth+1)
	}

	n.title = Title(loc.Route)

	d := Decide(loc.Route, n.session.IsLoggedIn(), n.session.IsAdmin())
	if d.Notice != nil {
		n.notifier.Notify(d.Notice.Level, d.Notice.Message)
	}

	if d.Action == Redirect {
		n.log.Debug(ctx, "navigation redirected", "from", loc.Path, "to", d.To)
		final, err := n.navigate(ctx, d.To, depth+1)
		if err != nil {
			return final, err
		}
		return final, fmt.Errorf("%w: %s redirected to %s", ErrNavigationAborted, loc.Path, final.Path)
	}

	n.current = loc
	return loc, nil
}

// RedirectToLogin forces navigation to the login screen.
func (n *Navigator) RedirectToLogin(ctx context.Context) {
	if _, err := n.Navigate(ctx, LoginPath); err != nil {
		n.log.Warn(ctx, "redirect to login failed", "err", err)
	}
}

func (n *Navigator) Current() Location {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *Navigator) Title() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.title
}
