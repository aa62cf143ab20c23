package loader

import (
	"errors"
	"fmt"

	"greeter/core/router"

	"github.com/gofiber/fiber/v2"
)

// ErrDuplicateFeature is returned when two features share a name.
var ErrDuplicateFeature = errors.New("duplicate feature")

// Feature is a self-contained module exposing a route table.
type Feature interface {
	Name() string
	IsEnabled() bool
	Routes() router.Table
}

// Manager holds the registered features.
type Manager struct {
	features []Feature
}

// NewManager creates an empty feature manager.
func NewManager() *Manager {
	return &Manager{}
}

// Register adds a feature. Order of registration is the order of routing.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// Enabled returns the names of enabled features in registration order.
func (m *Manager) Enabled() []string {
	var names []string
	for _, f := range m.features {
		if f.IsEnabled() {
			names = append(names, f.Name())
		}
	}
	return names
}

// Table merges the route tables of all enabled features.
func (m *Manager) Table() (router.Table, error) {
	seen := make(map[string]struct{}, len(m.features))
	var table router.Table
	for _, f := range m.features {
		if _, ok := seen[f.Name()]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateFeature, f.Name())
		}
		seen[f.Name()] = struct{}{}

		if !f.IsEnabled() {
			continue
		}
		table = append(table, f.Routes()...)
	}
	return table, nil
}

// LoadAll registers the merged route table on app.
func (m *Manager) LoadAll(app fiber.Router) error {
	table, err := m.Table()
	if err != nil {
		return err
	}
	if err := table.Register(app); err != nil {
		return fmt.Errorf("failed to load features: %w", err)
	}
	return nil
}
