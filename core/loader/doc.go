// Package loader provides the feature loading system.
//
// Each feature implements the Feature interface, which names it, reports
// whether it is enabled and returns its route table.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Routes() router.Table
//	}
//
// # Manager
//
// The Manager struct holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Merging the tables of enabled features and registering them via LoadAll()
//
// A route declared by two features, or two features with the same name,
// fails LoadAll before the server starts.
package loader
