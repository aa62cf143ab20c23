package cmd

import (
	"encoding/json"
	"fmt"

	"greeter/core/config"
	"greeter/feature/devbuild"

	"github.com/spf13/cobra"
)

var (
	devbuildFile string
	devbuildHost string
)

// devbuildCmd groups the dev-build configuration commands
var devbuildCmd = &cobra.Command{
	Use:   "devbuild",
	Short: "Inspect the front-end dev-build configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// devbuildShowCmd prints the effective configuration
var devbuildShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective dev-build configuration as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadDevBuild()
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

// devbuildResolveCmd applies the alias table to module specifiers
var devbuildResolveCmd = &cobra.Command{
	Use:   "resolve <specifier>...",
	Short: "Resolve module specifiers through the alias table",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadDevBuild()
		if err != nil {
			return err
		}
		r := cfg.Resolver()
		for _, spec := range args {
			if path, ok := r.Resolve(spec); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", spec, path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (no alias)\n", spec)
			}
		}
		return nil
	},
}

// devbuildCheckPortCmd verifies the dev-server port can be bound
var devbuildCheckPortCmd = &cobra.Command{
	Use:   "check-port",
	Short: "Bind the dev-server port with the configured strict policy",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadDevBuild()
		if err != nil {
			return err
		}
		ln, err := cfg.Bind(contextOf(cmd), devbuildHost)
		if err != nil {
			return fmt.Errorf("dev server cannot start: %w", err)
		}
		defer ln.Close()
		fmt.Fprintf(cmd.OutOrStdout(), "dev server port available: %s (strictPort=%t)\n", ln.Addr(), cfg.Server.StrictPort)
		return nil
	},
}

// loadDevBuild resolves the override file from --file, then DEVBUILD_FILE.
func loadDevBuild() (devbuild.Config, error) {
	src := devbuild.Source{File: devbuildFile}
	if src.File == "" {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return devbuild.Config{}, fmt.Errorf("failed to load configuration: %w", err)
		}
		src = cfg.DevBuild
	}
	return devbuild.Load(src)
}

func init() {
	devbuildCmd.PersistentFlags().StringVar(&devbuildFile, "file", "", "Dev-build config file (YAML, JSON or TOML)")
	devbuildCheckPortCmd.Flags().StringVar(&devbuildHost, "host", devbuild.DefaultHost, "Host to bind")

	devbuildCmd.AddCommand(devbuildShowCmd)
	devbuildCmd.AddCommand(devbuildResolveCmd)
	devbuildCmd.AddCommand(devbuildCheckPortCmd)
	RootCmd.AddCommand(devbuildCmd)
}
