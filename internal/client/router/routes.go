// Package router holds the client's route table, the navigation guard that
// gates every transition on the session, and the Navigator that applies it.
package router

import (
	"errors"
	"fmt"
	"strings"
)

const (
	LoginPath    = "/login"
	RegisterPath = "/register"
	HomePath     = "/home"

	titleSuffix = "Library Management System"
)

var (
	ErrRouteNotFound     = errors.New("route not found")
	ErrInvalidRoute      = errors.New("invalid route")
	ErrNavigationAborted = errors.New("navigation aborted")
	ErrRedirectLoop      = errors.New("too many redirects")
)

// Route describes one screen. Path segments starting with ':' are
// parameters. A non-empty Redirect makes the route an alias that is resolved
// before the guard runs.
type Route struct {
	Name          string
	Path          string
	Title         string
	RequiresAuth  bool
	RequiresAdmin bool
	Redirect      string
}

// Routes returns the built-in route table.
func Routes() []Route {
	return []Route{
		{Name: "Login", Path: LoginPath, Title: "Log in"},
		{Name: "Register", Path: RegisterPath, Title: "Register"},
		{Name: "Root", Path: "/", RequiresAuth: true, Redirect: HomePath},
		{Name: "Home", Path: HomePath, Title: "Home", RequiresAuth: true},
		{Name: "Profile", Path: "/profile", Title: "My profile", RequiresAuth: true},
		{Name: "BookList", Path: "/books", Title: "Books", RequiresAuth: true},
		{Name: "BookDetail", Path: "/books/:id", Title: "Book details", RequiresAuth: true},
		{Name: "MyBorrowRecords", Path: "/my-borrows", Title: "My borrows", RequiresAuth: true},
		{Name: "MyReservations", Path: "/my-reservations", Title: "My reservations", RequiresAuth: true},
		{Name: "Users", Path: "/users", Title: "User management", RequiresAuth: true, RequiresAdmin: true},
		{Name: "BookManagement", Path: "/book-management", Title: "Book management", RequiresAuth: true, RequiresAdmin: true},
		{Name: "CategoryManagement", Path: "/category-management", Title: "Category management", RequiresAuth: true, RequiresAdmin: true},
		{Name: "BorrowManagement", Path: "/borrow-management", Title: "Borrow management", RequiresAuth: true, RequiresAdmin: true},
		{Name: "ReservationManagement", Path: "/reservation-management", Title: "Reservation management", RequiresAuth: true, RequiresAdmin: true},
		{Name: "OverdueRecords", Path: "/overdue-records", Title: "Overdue records", RequiresAuth: true, RequiresAdmin: true},
		{Name: "BorrowStatistics", Path: "/borrow-statistics", Title: "Borrow statistics", RequiresAuth: true, RequiresAdmin: true},
	}
}

// Validate checks a route table: admin routes must also require auth, paths
// and names are unique, and every alias points at a known path.
func Validate(routes []Route) error {
	paths := make(map[string]struct{}, len(routes))
	names := make(map[string]struct{}, len(routes))

	for _, r := range routes {
		if !strings.HasPrefix(r.Path, "/") {
			return fmt.Errorf("%w: %q: path must start with /", ErrInvalidRoute, r.Path)
		}
		if r.RequiresAdmin && !r.RequiresAuth {
			return fmt.Errorf("%w: %q requires admin but not auth", ErrInvalidRoute, r.Path)
		}
		if _, dup := paths[r.Path]; dup {
			return fmt.Errorf("%w: duplicate path %q", ErrInvalidRoute, r.Path)
		}
		paths[r.Path] = struct{}{}
		if r.Name != "" {
			if _, dup := names[r.Name]; dup {
				return fmt.Errorf("%w: duplicate name %q", ErrInvalidRoute, r.Name)
			}
			names[r.Name] = struct{}{}
		}
	}

	for _, r := range routes {
		if r.Redirect == "" {
			continue
		}
		if _, ok := paths[r.Redirect]; !ok {
			return fmt.Errorf("%w: %q redirects to unknown path %q", ErrInvalidRoute, r.Path, r.Redirect)
		}
	}
	return nil
}

// Location is a resolved path.
type Location struct {
	Route  Route
	Path   string
	Params map[string]string
}

// Table matches paths against a validated route list.
type Table struct {
	routes []Route
}

// NewTable validates routes and builds a lookup table over them.
func NewTable(routes []Route) (*Table, error) {
	if err := Validate(routes); err != nil {
		return nil, err
	}
	return &Table{routes: append([]Route(nil), routes...)}, nil
}

func (t *Table) Routes() []Route {
	return append([]Route(nil), t.routes...)
}

// Match resolves path. Query strings and trailing slashes are ignored.
func (t *Table) Match(path string) (Location, bool) {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	segs := splitPath(path)
	for _, r := range t.routes {
		if params, ok := matchSegments(splitPath(r.Path), segs); ok {
			return Location{Route: r, Path: path, Params: params}, true
		}
	}
	return Location{}, false
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func matchSegments(pattern, segs []string) (map[string]string, bool) {
	if len(pattern) != len(segs) {
		return nil, false
	}
	var params map[string]string
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			if segs[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string)
			}
			params[p[1:]] = segs[i]
			continue
		}
		if p != segs[i] {
			return nil, false
		}
	}
	return params, true
}

// Title formats the page title for a route.
func Title(r Route) string {
	if r.Title == "" {
		return titleSuffix
	}
	return r.Title + " - " + titleSuffix
}
