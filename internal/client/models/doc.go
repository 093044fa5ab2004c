// Package models holds the wire types exchanged with the library server:
// the user profile kept in the session, resource records, request bodies,
// list queries, and the generic Page wrapper used by paginated endpoints.
//
// Timestamps are kept as the server's "yyyy-MM-dd HH:mm:ss" strings.
package models
