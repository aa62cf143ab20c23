// Package config provides configuration management for the greeter.
//
// It utilizes Viper for loading configuration from environment variables,
// with an optional .env file overlaid first through godotenv.
//
// # Configuration Structure
//
// The Config struct gathers every setting, divided into subsections:
//   - Server: PORT and BIND_ADDRESS (top-level keys, squashed)
//   - Log: LOG_LEVEL and LOG_FORMAT
//   - DevBuild: DEVBUILD_FILE, an optional dev-build override document
//
// Defaults come from the `default` struct tags. The server section is
// validated while loading, so a non-numeric PORT fails startup instead of
// leaking into responses.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
