package devbuild

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when the document fails validation.
var ErrInvalidConfig = errors.New("invalid dev-build config")

// Plugin describes one bundler plugin.
type Plugin struct {
	// Name is the plugin package, e.g. "@tailwindcss/vite".
	Name string `mapstructure:"name" json:"name"`
	// Options are passed to the plugin factory untouched.
	Options map[string]any `mapstructure:"options" json:"options,omitempty"`
}

// ServerConfig holds the dev-server listen settings.
type ServerConfig struct {
	Port int `mapstructure:"port" json:"port"`
	// StrictPort makes the dev server fail rather than pick another port.
	StrictPort bool `mapstructure:"strictPort" json:"strictPort"`
}

// Alias substitutes Find for Replacement at the start of a module specifier.
type Alias struct {
	Find        string `mapstructure:"find" json:"find"`
	Replacement string `mapstructure:"replacement" json:"replacement"`
}

// ResolveConfig holds module resolution settings.
type ResolveConfig struct {
	// Alias entries are matched in order; the first match wins.
	Alias []Alias `mapstructure:"alias" json:"alias"`
}

// Config is the dev-build document.
type Config struct {
	Plugins []Plugin      `mapstructure:"plugins" json:"plugins"`
	Server  ServerConfig  `mapstructure:"server" json:"server"`
	Resolve ResolveConfig `mapstructure:"resolve" json:"resolve"`
}

// Default returns the shipped dev-build document.
func Default() Config {
	return Config{
		Plugins: []Plugin{
			{Name: "@tailwindcss/vite"},
		},
		Server: ServerConfig{
			Port:       3000,
			StrictPort: true,
		},
		Resolve: ResolveConfig{
			Alias: []Alias{
				{Find: "@", Replacement: "/src"},
			},
		},
	}
}

// Validate checks plugin names, the port range and alias uniqueness.
func (c Config) Validate() error {
	plugins := make(map[string]struct{}, len(c.Plugins))
	for i, p := range c.Plugins {
		if p.Name == "" {
			return fmt.Errorf("%w: plugin %d has no name", ErrInvalidConfig, i)
		}
		if _, ok := plugins[p.Name]; ok {
			return fmt.Errorf("%w: plugin %q listed twice", ErrInvalidConfig, p.Name)
		}
		plugins[p.Name] = struct{}{}
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server port %d out of range", ErrInvalidConfig, c.Server.Port)
	}

	finds := make(map[string]struct{}, len(c.Resolve.Alias))
	for i, a := range c.Resolve.Alias {
		if a.Find == "" {
			return fmt.Errorf("%w: alias %d has no find", ErrInvalidConfig, i)
		}
		if _, ok := finds[a.Find]; ok {
			return fmt.Errorf("%w: alias %q declared twice", ErrInvalidConfig, a.Find)
		}
		finds[a.Find] = struct{}{}
	}
	return nil
}

// PluginNames returns the plugin names in application order.
func (c Config) PluginNames() []string {
	names := make([]string, 0, len(c.Plugins))
	for _, p := range c.Plugins {
		names = append(names, p.Name)
	}
	return names
}
