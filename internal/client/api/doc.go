// Package api is the single HTTP transport to the library server.
//
// Every call passes through two phases. The request phase attaches the
// bearer credential, a request ID and the Accept header. The response phase
// classifies the outcome into an envelope or an *Error, then enforces the
// client-wide policy for it: a notification for every failure, and on an
// authentication failure the session is dropped and the user is sent to the
// login screen. Call sites never repeat any of this.
package api
