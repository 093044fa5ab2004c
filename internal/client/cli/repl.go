package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/bookdesk/internal/client/api"
	"github.com/dmitrijs2005/bookdesk/internal/client/notify"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Fprintln

var errUsage = errors.New("usage")

// command is one REPL verb. When path is set, the command belongs to that
// screen and only runs if navigation there succeeds.
type command struct {
	name    string
	usage   string
	summary string
	admin   bool
	path    func(args []string) (string, error)
	run     func(ctx context.Context, args []string) error
}

func at(path string) func([]string) (string, error) {
	return func([]string) (string, error) { return path, nil }
}

// atID builds a path from the first argument, e.g. /books/<id>.
func atID(prefix string) func([]string) (string, error) {
	return func(args []string) (string, error) {
		if _, err := argID(args, 0); err != nil {
			return "", err
		}
		return prefix + args[0], nil
	}
}

// execIface is the surface the REPL needs; *App satisfies it and tests
// provide a stub.
type execIface interface {
	commands() []command
	open(ctx context.Context, path string) bool
	prompt() string
	isAdmin() bool
	output() io.Writer
	notify(level notify.Level, msg string)
}

func (a *App) output() io.Writer { return a.out }

func (a *App) notify(level notify.Level, msg string) { a.notifier.Notify(level, msg) }

// runREPL reads one command per line until EOF, "exit" or "quit".
//
// Errors returned by handlers are reported here and never stop the loop:
// transport failures were already shown by the HTTP client, usage errors
// print the command synopsis, anything else becomes an error notification.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader) {
	cmds := a.commands()
	byName := make(map[string]command, len(cmds))
	for _, c := range cmds {
		byName[c.name] = c
	}
	w := a.output()

	for {
		fmt.Fprint(w, a.prompt())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			printlnFn(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "exit", "quit":
			printlnFn(w, "Bye!")
			return
		case "help":
			printHelp(w, cmds, a.isAdmin())
			continue
		}

		c, ok := byName[name]
		if !ok {
			printlnFn(w, "Unknown command:", name)
			continue
		}

		if c.path != nil {
			path, err := c.path(args)
			if err != nil {
				printlnFn(w, "Usage:", c.name, c.usage)
				continue
			}
			if !a.open(ctx, path) {
				continue
			}
		}

		if err := c.run(ctx, args); err != nil {
			report(w, a, c, err)
		}
	}
}

func report(w io.Writer, a execIface, c command, err error) {
	var apiErr *api.Error
	switch {
	case errors.As(err, &apiErr):
	case errors.Is(err, errUsage):
		printlnFn(w, "Usage:", c.name, c.usage)
	default:
		a.notify(notify.Error, err.Error())
	}
}

func printHelp(w io.Writer, cmds []command, admin bool) {
	printlnFn(w, "Available commands:")
	for _, c := range cmds {
		if c.admin && !admin {
			continue
		}
		printlnFn(w, fmt.Sprintf("  %-40s %s", strings.TrimSpace(c.name+" "+c.usage), c.summary))
	}
	printlnFn(w, fmt.Sprintf("  %-40s %s", "exit | quit", "leave the program"))
}

// commands is the full command table.
func (a *App) commands() []command {
	return []command{
		{name: "go", usage: "<path>", summary: "open a screen by path", path: func(args []string) (string, error) {
			if len(args) != 1 {
				return "", errUsage
			}
			return args[0], nil
		}, run: a.Where},
		{name: "where", summary: "show the current screen", run: a.Where},

		{name: "login", summary: "log in", path: at("/login"), run: a.Login},
		{name: "register", summary: "create an account", path: at("/register"), run: a.Register},
		{name: "logout", summary: "log out", run: a.Logout},

		{name: "home", summary: "home screen", path: at("/home"), run: a.Home},
		{name: "profile", summary: "show my profile", path: at("/profile"), run: a.Profile},
		{name: "profile-edit", summary: "edit my profile", path: at("/profile"), run: a.EditProfile},
		{name: "password", summary: "change my password", path: at("/profile"), run: a.ChangePassword},

		{name: "books", usage: "[page] [title]", summary: "browse books", path: at("/books"), run: a.ListBooks},
		{name: "book", usage: "<id>", summary: "book details", path: atID("/books/"), run: a.ShowBook},
		{name: "borrow", usage: "<book-id>", summary: "borrow a book", path: atID("/books/"), run: a.BorrowBook},
		{name: "reserve", usage: "<book-id> [remark]", summary: "reserve a book", path: atID("/books/"), run: a.ReserveBook},

		{name: "my-borrows", usage: "[status] [page]", summary: "my borrow records", path: at("/my-borrows"), run: a.MyBorrows},
		{name: "return", usage: "<record-id>", summary: "return a borrowed book", path: at("/my-borrows"), run: a.ReturnBook},
		{name: "renew", usage: "<record-id>", summary: "renew a borrowed book", path: at("/my-borrows"), run: a.RenewBook},

		{name: "my-reservations", usage: "[status] [page]", summary: "my reservations", path: at("/my-reservations"), run: a.MyReservations},
		{name: "cancel", usage: "<reservation-id>", summary: "cancel a reservation", path: at("/my-reservations"), run: a.CancelReservation},

		{name: "users", usage: "[page] [username]", summary: "list users", admin: true, path: at("/users"), run: a.ListUsers},
		{name: "user-status", usage: "<id> <0|1>", summary: "disable or enable a user", admin: true, path: at("/users"), run: a.SetUserStatus},
		{name: "user-role", usage: "<id> <admin|user>", summary: "change a user's role", admin: true, path: at("/users"), run: a.SetUserRole},

		{name: "book-add", summary: "add a book", admin: true, path: at("/book-management"), run: a.AddBook},
		{name: "book-edit", usage: "<id>", summary: "edit a book", admin: true, path: at("/book-management"), run: a.EditBook},
		{name: "book-delete", usage: "<id> [id...]", summary: "delete books", admin: true, path: at("/book-management"), run: a.DeleteBooks},
		{name: "book-status", usage: "<id> <0|1>", summary: "take a book off or on the shelf", admin: true, path: at("/book-management"), run: a.SetBookStatus},
		{name: "cover", usage: "<file>", summary: "upload a cover image", admin: true, path: at("/book-management"), run: a.UploadCover},

		{name: "categories", usage: "[page]", summary: "list categories", admin: true, path: at("/category-management"), run: a.ListCategories},
		{name: "category-add", summary: "add a category", admin: true, path: at("/category-management"), run: a.AddCategory},
		{name: "category-edit", usage: "<id>", summary: "edit a category", admin: true, path: at("/category-management"), run: a.EditCategory},
		{name: "category-delete", usage: "<id>", summary: "delete a category", admin: true, path: at("/category-management"), run: a.DeleteCategory},

		{name: "borrows", usage: "[status] [page]", summary: "all borrow records", admin: true, path: at("/borrow-management"), run: a.AllBorrows},
		{name: "reservations", usage: "[status] [page]", summary: "all reservations", admin: true, path: at("/reservation-management"), run: a.AllReservations},
		{name: "approve", usage: "<reservation-id>", summary: "approve a reservation", admin: true, path: at("/reservation-management"), run: a.ApproveReservation},
		{name: "reject", usage: "<reservation-id> [remark]", summary: "reject a reservation", admin: true, path: at("/reservation-management"), run: a.RejectReservation},
		{name: "overdue", usage: "[page]", summary: "overdue records", admin: true, path: at("/overdue-records"), run: a.Overdue},
		{name: "stats", summary: "borrow statistics", admin: true, path: at("/borrow-statistics"), run: a.Statistics},
	}
}
