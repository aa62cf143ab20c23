package greeting

import (
	"context"
	"errors"
	"fmt"
	"net"

	"greeter/core/loader"
	"greeter/core/middleware/rayid"
	"greeter/core/middleware/requestlog"
	"greeter/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NewApp builds the Fiber application serving the greeting.
func NewApp(cfg server.Config, logg *zap.Logger) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(rayid.New())
	app.Use(requestlog.New(logg))

	mgr := loader.NewManager()
	mgr.Register(NewFeature(cfg, logg))
	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	return app, nil
}

// Bind opens the listening socket. An occupied port is an error.
func Bind(ctx context.Context, cfg server.Config) (net.Listener, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	port, _ := cfg.PortNumber()
	return server.Listen(ctx, cfg.BindAddress, port, true)
}

// Serve binds cfg and serves the greeting until ctx is cancelled.
func Serve(ctx context.Context, cfg server.Config, logg *zap.Logger) error {
	app, err := NewApp(cfg, logg)
	if err != nil {
		return err
	}

	ln, err := Bind(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", cfg.Address(), err)
	}
	return ServeListener(ctx, app, ln, cfg, logg)
}

// ServeListener serves app on an already bound listener until ctx is done.
func ServeListener(ctx context.Context, app *fiber.App, ln net.Listener, cfg server.Config, logg *zap.Logger) error {
	logg.Info("Greeting server listening",
		zap.String("address", cfg.BindAddress),
		zap.String("port", cfg.Port),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listener(ln)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, net.ErrClosed) {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
		logg.Info("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		<-errCh
		return nil
	}
}
