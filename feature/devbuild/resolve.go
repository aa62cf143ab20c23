package devbuild

import "strings"

// Resolver rewrites module specifiers using an ordered alias table.
type Resolver struct {
	aliases []Alias
}

// NewResolver creates a resolver over aliases. The slice is copied.
func NewResolver(aliases []Alias) *Resolver {
	return &Resolver{aliases: append([]Alias(nil), aliases...)}
}

// Resolver returns a resolver for the config's alias table.
func (c Config) Resolver() *Resolver {
	return NewResolver(c.Resolve.Alias)
}

// Resolve applies the first alias whose Find equals specifier or is
// followed by "/" in it. The boolean reports whether an alias matched.
func (r *Resolver) Resolve(specifier string) (string, bool) {
	for _, a := range r.aliases {
		if specifier == a.Find {
			return a.Replacement, true
		}
		if strings.HasPrefix(specifier, a.Find+"/") {
			return a.Replacement + specifier[len(a.Find):], true
		}
	}
	return specifier, false
}
