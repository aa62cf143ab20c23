package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"syscall"
)

var (
	// ErrPortInUse is returned by a strict Listen when the port is taken.
	ErrPortInUse = errors.New("port is already in use")
	// ErrNoFreePort is returned when a non-strict Listen runs past 65535.
	ErrNoFreePort = errors.New("no free port available")
)

// Listen binds a TCP listener on host:port.
//
// With strict set, an occupied port is an error. Otherwise the next ports are
// tried in turn until one binds or the port range is exhausted.
func Listen(ctx context.Context, host string, port int, strict bool) (net.Listener, error) {
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("%w: %d out of range", ErrInvalidPort, port)
	}

	var lc net.ListenConfig
	for p := port; p <= 65535; p++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		addr := net.JoinHostPort(host, strconv.Itoa(p))
		ln, err := lc.Listen(ctx, "tcp", addr)
		if err == nil {
			return ln, nil
		}
		if !isAddrInUse(err) {
			return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
		}
		if strict {
			return nil, fmt.Errorf("%w: %s", ErrPortInUse, addr)
		}
	}
	return nil, fmt.Errorf("%w: tried %d-65535 on %s", ErrNoFreePort, port, host)
}

func isAddrInUse(err error) bool {
	return errors.Is(err, syscall.EADDRINUSE)
}
