package router

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/bookdesk/internal/client/notify"
	"github.com/dmitrijs2005/bookdesk/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	loggedIn bool
	admin    bool
}

func (f *fakeSession) IsLoggedIn() bool { return f.loggedIn }
func (f *fakeSession) IsAdmin() bool    { return f.admin }

type note struct {
	level notify.Level
	msg   string
}

type fakeNotifier struct {
	notes []note
}

func (f *fakeNotifier) Notify(level notify.Level, msg string) {
	f.notes = append(f.notes, note{level, msg})
}

func newNavigator(t *testing.T, sess *fakeSession) (*Navigator, *fakeNotifier) {
	t.Helper()
	table, err := NewTable(Routes())
	require.NoError(t, err)
	n := &fakeNotifier{}
	return NewNavigator(table, sess, n, logging.Discard()), n
}

func TestNavigate_AnonymousToPrivate_RedirectsToLogin(t *testing.T) {
	nav, notes := newNavigator(t, &fakeSession{})

	loc, err := nav.Navigate(context.Background(), "/my-borrows")
	require.ErrorIs(t, err, ErrNavigationAborted)

	assert.Equal(t, LoginPath, loc.Path)
	assert.Equal(t, LoginPath, nav.Current().Path)
	assert.Equal(t, "Log in - Library Management System", nav.Title())
	assert.Equal(t, []note{{notify.Warning, msgLoginFirst}}, notes.notes)
}

func TestNavigate_UserToAdminPage_RedirectsHome(t *testing.T) {
	nav, notes := newNavigator(t, &fakeSession{loggedIn: true})

	loc, err := nav.Navigate(context.Background(), "/borrow-statistics")
	require.ErrorIs(t, err, ErrNavigationAborted)

	assert.Equal(t, HomePath, loc.Path)
	assert.Equal(t, "Home - Library Management System", nav.Title())
	assert.Equal(t, []note{{notify.Error, msgAccessDenied}}, notes.notes)
}

func TestNavigate_LoggedInToLogin_RedirectsHomeSilently(t *testing.T) {
	nav, notes := newNavigator(t, &fakeSession{loggedIn: true})

	loc, err := nav.Navigate(context.Background(), LoginPath)
	require.ErrorIs(t, err, ErrNavigationAborted)
	assert.Equal(t, HomePath, loc.Path)
	assert.Empty(t, notes.notes)
}

func TestNavigate_RootAlias_LandsOnHome(t *testing.T) {
	nav, _ := newNavigator(t, &fakeSession{loggedIn: true})

	loc, err := nav.Navigate(context.Background(), "/")
	require.NoError(t, err)
	assert.Equal(t, "Home", loc.Route.Name)
	assert.Equal(t, "Home - Library Management System", nav.Title())
}

func TestNavigate_AdminProceeds(t *testing.T) {
	nav, notes := newNavigator(t, &fakeSession{loggedIn: true, admin: true})

	loc, err := nav.Navigate(context.Background(), "/users")
	require.NoError(t, err)
	assert.Equal(t, "Users", loc.Route.Name)
	assert.Equal(t, "User management - Library Management System", nav.Title())
	assert.Empty(t, notes.notes)
}

func TestNavigate_Params(t *testing.T) {
	nav, _ := newNavigator(t, &fakeSession{loggedIn: true})

	loc, err := nav.Navigate(context.Background(), "/books/7")
	require.NoError(t, err)
	assert.Equal(t, "7", loc.Params["id"])
}

func TestNavigate_UnknownRoute_KeepsLocation(t *testing.T) {
	nav, _ := newNavigator(t, &fakeSession{loggedIn: true})
	_, err := nav.Navigate(context.Background(), "/books")
	require.NoError(t, err)

	loc, err := nav.Navigate(context.Background(), "/missing")
	require.ErrorIs(t, err, ErrRouteNotFound)
	assert.Equal(t, "/books", loc.Path)
	assert.Equal(t, "/books", nav.Current().Path)
}

func TestNavigate_RedirectLoop(t *testing.T) {
	routes := []Route{
		{Path: "/a", Redirect: "/b"},
		{Path: "/b", Redirect: "/a"},
	}
	table, err := NewTable(routes)
	require.NoError(t, err)
	nav := NewNavigator(table, &fakeSession{}, &fakeNotifier{}, logging.Discard())

	_, err = nav.Navigate(context.Background(), "/a")
	require.ErrorIs(t, err, ErrRedirectLoop)
}

func TestRedirectToLogin(t *testing.T) {
	sess := &fakeSession{loggedIn: true}
	nav, _ := newNavigator(t, sess)
	_, err := nav.Navigate(context.Background(), "/books")
	require.NoError(t, err)

	sess.loggedIn = false
	nav.RedirectToLogin(context.Background())
	assert.Equal(t, LoginPath, nav.Current().Path)
}
