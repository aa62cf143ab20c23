package devbuild

import (
	"fmt"

	"github.com/spf13/viper"
)

// Source locates an optional dev-build override file.
type Source struct {
	// File is a YAML, JSON or TOML document replacing the shipped defaults.
	File string `mapstructure:"file" default:""`
}

// Load returns Default, overridden by src.File when set, and validates it.
// Keys present in the file replace the defaults; the plugin and alias lists
// are replaced whole.
func Load(src Source) (Config, error) {
	cfg := Default()
	if src.File == "" {
		return cfg, cfg.Validate()
	}

	v := viper.New()
	v.SetConfigFile(src.File)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("failed to read dev-build config %s: %w", src.File, err)
	}

	// Viper lowercases keys; mapstructure matches them to fields
	// case-insensitively, so strictPort still decodes.
	var file Config
	if err := v.Unmarshal(&file); err != nil {
		return Config{}, fmt.Errorf("failed to decode dev-build config %s: %w", src.File, err)
	}

	if v.IsSet("plugins") {
		cfg.Plugins = file.Plugins
	}
	if v.IsSet("server.port") {
		cfg.Server.Port = file.Server.Port
	}
	if v.IsSet("server.strictport") {
		cfg.Server.StrictPort = file.Server.StrictPort
	}
	if v.IsSet("resolve.alias") {
		cfg.Resolve.Alias = file.Resolve.Alias
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
