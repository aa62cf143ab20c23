// Package devbuild models the front-end dev-build configuration.
//
// The document is consumed by an external bundler: an ordered plugin list,
// a dev-server port with a strict-port policy, and module resolution
// aliases. This package does not bundle anything. It loads and validates
// the document and implements the two behaviours the document promises:
//
//   - Alias resolution: "@/foo" resolves to "/src/foo" with the default
//     alias table.
//   - Strict port: Bind fails instead of moving to another port when the
//     configured one is taken.
//
// # Configuration
//
// Default returns the shipped document. Load reads an optional override
// file (YAML, JSON or TOML, chosen by extension) through Viper; the path is
// taken from DEVBUILD_FILE or the --file flag of the devbuild commands.
package devbuild
