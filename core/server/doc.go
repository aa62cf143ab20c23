// Package server holds the HTTP listener configuration and the binding logic.
//
// The application entry point owns the server lifecycle; this package only
// describes where to listen and knows how to open the socket.
//
// # Configuration
//
// The Config struct defines the port and the bind address. Both are read
// from the PORT and BIND_ADDRESS environment variables by core/config and
// validated once at startup.
//
// # Binding
//
// Listen opens a TCP listener. In strict mode an occupied port fails the
// call with ErrPortInUse; otherwise the following ports are tried until one
// is free. The greeting server always binds strictly, the dev-build config
// decides through its strictPort flag.
package server
