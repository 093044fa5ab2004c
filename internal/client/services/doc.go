// Package services contains the client's resource services: one method per
// server endpoint, each keeping the last result it fetched so the CLI can
// render it. Failures are logged and returned unchanged; the transport has
// already notified the user.
package services
