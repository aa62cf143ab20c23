package devbuild

import (
	"context"
	"net"

	"greeter/core/server"
)

// DefaultHost is the dev-server host when none is given.
const DefaultHost = "localhost"

// Bind opens the dev-server port on host honouring StrictPort.
// An empty host binds DefaultHost.
func (c Config) Bind(ctx context.Context, host string) (net.Listener, error) {
	if host == "" {
		host = DefaultHost
	}
	return server.Listen(ctx, host, c.Server.Port, c.Server.StrictPort)
}
