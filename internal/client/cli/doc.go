// Package cli provides the interactive bookdesk command-line client.
//
// Each screen of the library application is a route; every command that
// belongs to a screen first navigates there through the router, so the
// navigation guard decides whether it may run. Commands talk to the server
// only through the resource services.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, commands and runREPL for details.
package cli
