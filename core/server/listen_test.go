package server_test

import (
	"context"
	"net"
	"testing"

	"greeter/core/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// occupy binds an ephemeral port and returns it with its listener.
func occupy(t *testing.T) (net.Listener, int) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })
	return ln, ln.Addr().(*net.TCPAddr).Port
}

func TestListen(t *testing.T) {
	ctx := context.Background()

	t.Run("BindsRequestedPort", func(t *testing.T) {
		ln, port := occupy(t)
		require.NoError(t, ln.Close())

		got, err := server.Listen(ctx, "127.0.0.1", port, true)
		require.NoError(t, err)
		defer got.Close()

		addr := got.Addr().(*net.TCPAddr)
		assert.Equal(t, port, addr.Port)
		assert.Equal(t, "127.0.0.1", addr.IP.String())
	})

	t.Run("StrictFailsWhenOccupied", func(t *testing.T) {
		_, port := occupy(t)

		got, err := server.Listen(ctx, "127.0.0.1", port, true)
		assert.ErrorIs(t, err, server.ErrPortInUse)
		assert.Nil(t, got)
	})

	t.Run("NonStrictFallsBack", func(t *testing.T) {
		_, port := occupy(t)
		if port == 65535 {
			t.Skip("no room above ephemeral port")
		}

		got, err := server.Listen(ctx, "127.0.0.1", port, false)
		require.NoError(t, err)
		defer got.Close()
		assert.Greater(t, got.Addr().(*net.TCPAddr).Port, port)
	})

	t.Run("InvalidPort", func(t *testing.T) {
		_, err := server.Listen(ctx, "127.0.0.1", 0, true)
		assert.ErrorIs(t, err, server.ErrInvalidPort)
	})

	t.Run("CancelledContext", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := server.Listen(cctx, "127.0.0.1", 3000, true)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
