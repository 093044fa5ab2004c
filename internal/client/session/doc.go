// Package session keeps the client's authentication state: the bearer
// credential issued by the server and the profile of the user it belongs to.
//
// The pair is mirrored into the local SQLite metadata table under the keys
// "token" and "userInfo" so it survives restarts. The two fields are always
// written and removed together; callers can only ever observe a complete
// session or none at all.
package session
