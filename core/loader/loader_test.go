package loader_test

import (
	"net/http/httptest"
	"testing"

	"greeter/core/loader"
	"greeter/core/router"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeature struct {
	name    string
	enabled bool
	routes  router.Table
}

func (s stubFeature) Name() string         { return s.name }
func (s stubFeature) IsEnabled() bool      { return s.enabled }
func (s stubFeature) Routes() router.Table { return s.routes }

func ok(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }

func TestManager_LoadAll(t *testing.T) {
	mgr := loader.NewManager()
	mgr.Register(stubFeature{name: "a", enabled: true, routes: router.Table{{Method: "GET", Path: "/a", Handler: ok}}})
	mgr.Register(stubFeature{name: "b", enabled: false, routes: router.Table{{Method: "GET", Path: "/b", Handler: ok}}})

	app := fiber.New()
	require.NoError(t, mgr.LoadAll(app))
	assert.Equal(t, []string{"a"}, mgr.Enabled())

	resp, err := app.Test(httptest.NewRequest("GET", "/a", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/b", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestManager_DuplicateFeature(t *testing.T) {
	mgr := loader.NewManager()
	mgr.Register(stubFeature{name: "a", enabled: true})
	mgr.Register(stubFeature{name: "a", enabled: true})

	assert.ErrorIs(t, mgr.LoadAll(fiber.New()), loader.ErrDuplicateFeature)
}

func TestManager_ConflictingRoutes(t *testing.T) {
	mgr := loader.NewManager()
	mgr.Register(stubFeature{name: "a", enabled: true, routes: router.Table{{Method: "GET", Path: "/", Handler: ok}}})
	mgr.Register(stubFeature{name: "b", enabled: true, routes: router.Table{{Method: "GET", Path: "/", Handler: ok}}})

	assert.ErrorIs(t, mgr.LoadAll(fiber.New()), router.ErrDuplicateRoute)
}
