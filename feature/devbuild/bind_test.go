package devbuild_test

import (
	"context"
	"net"
	"testing"

	"greeter/core/server"
	"greeter/feature/devbuild"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Bind(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()
	port := occupied.Addr().(*net.TCPAddr).Port

	t.Run("StrictFails", func(t *testing.T) {
		cfg := devbuild.Default()
		cfg.Server.Port = port

		ln, err := cfg.Bind(context.Background(), "127.0.0.1")
		assert.ErrorIs(t, err, server.ErrPortInUse)
		assert.Nil(t, ln)
	})

	t.Run("LenientMovesOn", func(t *testing.T) {
		if port == 65535 {
			t.Skip("no room above ephemeral port")
		}
		cfg := devbuild.Default()
		cfg.Server.Port = port
		cfg.Server.StrictPort = false

		ln, err := cfg.Bind(context.Background(), "127.0.0.1")
		require.NoError(t, err)
		defer ln.Close()
		assert.NotEqual(t, port, ln.Addr().(*net.TCPAddr).Port)
	})
}
