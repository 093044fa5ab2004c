package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/bookdesk/internal/client/api"
	"github.com/dmitrijs2005/bookdesk/internal/client/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	admin   bool
	blocked map[string]bool

	opened   []string
	calls    []string
	notified []string
	runErr   error
	out      bytes.Buffer
}

func (f *fakeExec) commands() []command {
	run := func(name string) func(context.Context, []string) error {
		return func(_ context.Context, args []string) error {
			f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
			return f.runErr
		}
	}
	return []command{
		{name: "where", run: run("where")},
		{name: "books", usage: "[page]", path: at("/books"), run: run("books")},
		{name: "book", usage: "<id>", path: atID("/books/"), run: run("book")},
		{name: "users", admin: true, summary: "list users", path: at("/users"), run: run("users")},
	}
}

func (f *fakeExec) open(_ context.Context, path string) bool {
	f.opened = append(f.opened, path)
	return !f.blocked[path]
}

func (f *fakeExec) prompt() string    { return "> " }
func (f *fakeExec) isAdmin() bool     { return f.admin }
func (f *fakeExec) output() io.Writer { return &f.out }
func (f *fakeExec) notify(level notify.Level, msg string) {
	f.notified = append(f.notified, level.String()+": "+msg)
}

func TestRunREPL_GuardedCommandRunsOnlyAfterNavigation(t *testing.T) {
	exec := &fakeExec{blocked: map[string]bool{"/users": true}}
	in := strings.Join([]string{"books 2", "users", "book 7", "where", "exit", "books"}, "\n")

	runREPL(context.Background(), exec, bufio.NewReader(strings.NewReader(in)))

	assert.Equal(t, []string{"/books", "/users", "/books/7"}, exec.opened)
	assert.Equal(t, []string{"books 2", "book 7", "where"}, exec.calls)
	assert.Contains(t, exec.out.String(), "Bye!")
}

func TestRunREPL_BadPathArgsPrintUsage(t *testing.T) {
	exec := &fakeExec{}

	runREPL(context.Background(), exec, bufio.NewReader(strings.NewReader("book abc\nbook\nfoobar\n")))

	assert.Empty(t, exec.opened)
	assert.Empty(t, exec.calls)
	out := exec.out.String()
	assert.Equal(t, 2, strings.Count(out, "Usage: book <id>"))
	assert.Contains(t, out, "Unknown command: foobar")
}

func TestRunREPL_ErrorReporting(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantOut   string
		wantNotes []string
	}{
		{name: "transport error already shown", err: &api.Error{Kind: api.KindBusiness, Message: "nope"}},
		{name: "usage", err: fmt.Errorf("%w: invalid id", errUsage), wantOut: "Usage: where"},
		{name: "other", err: errors.New("passwords do not match"), wantNotes: []string{"error: passwords do not match"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			exec := &fakeExec{runErr: tc.err}
			runREPL(context.Background(), exec, bufio.NewReader(strings.NewReader("where\n")))

			require.Equal(t, []string{"where"}, exec.calls)
			if tc.wantOut != "" {
				assert.Contains(t, exec.out.String(), tc.wantOut)
			}
			assert.Equal(t, tc.wantNotes, exec.notified)
		})
	}
}

func TestPrintHelp_HidesAdminCommands(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer

	printHelp(&out, exec.commands(), false)
	assert.NotContains(t, out.String(), "list users")

	out.Reset()
	printHelp(&out, exec.commands(), true)
	assert.Contains(t, out.String(), "list users")
	assert.Contains(t, out.String(), "exit | quit")
}
