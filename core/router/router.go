package router

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var (
	// ErrInvalidRoute is returned for a route missing its method, path or handler.
	ErrInvalidRoute = errors.New("invalid route")
	// ErrDuplicateRoute is returned when a method and path pair appears twice.
	ErrDuplicateRoute = errors.New("duplicate route")
)

// Route is a single entry of the route table.
type Route struct {
	Method  string
	Path    string
	Handler fiber.Handler
}

// Table is an ordered list of routes, registered in declaration order.
type Table []Route

// Validate checks every route and rejects duplicates.
func (t Table) Validate() error {
	seen := make(map[string]struct{}, len(t))
	for i, r := range t {
		if r.Method == "" || r.Path == "" || r.Handler == nil {
			return fmt.Errorf("%w at index %d: %s %q", ErrInvalidRoute, i, r.Method, r.Path)
		}
		key := strings.ToUpper(r.Method) + " " + r.Path
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateRoute, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// Register validates the table and adds each route to r.
func (t Table) Register(r fiber.Router) error {
	if err := t.Validate(); err != nil {
		return err
	}
	for _, route := range t {
		r.Add(strings.ToUpper(route.Method), route.Path, route.Handler)
	}
	return nil
}
