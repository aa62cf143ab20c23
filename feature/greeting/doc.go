// Package greeting implements the greeting server.
//
// The server answers GET / with a fixed text payload that embeds the
// configured port exactly as it was given. It registers no other route.
//
// # Lifecycle
//
// Serve binds the configured address strictly (an occupied port is fatal),
// logs a single line once the socket is bound and serves until its context
// is cancelled.
package greeting
