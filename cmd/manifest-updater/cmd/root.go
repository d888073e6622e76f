package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/johncarney/manifest-sync/internal/config"
	"github.com/johncarney/manifest-sync/internal/service/updater"
	"github.com/johncarney/manifest-sync/internal/version"
)

var (
	// configPath stores the path to the settings YAML file.
	configPath string
	// manifestPath overrides the manifest location from the settings.
	manifestPath string
	// logLevel overrides the diagnostics level from the settings.
	logLevel string
	// validate requires the version argument to parse as semver.
	validate bool

	// rootCmd represents the base command for bumping the manifest version.
	rootCmd = &cobra.Command{
		Use:   "manifest-updater <version>",
		Short: "Set a new manifest version and rewrite its download URL.",
		Long: `Release helper that bumps the module manifest to a new version.

Reads module.json from the current directory, sets the version field to the
supplied argument verbatim, and replaces the path segment following the
/releases/download/ marker in the download URL with the same value. The
manifest is written back in place with 2-space indentation, keys in their
original order. When the marker is absent the download URL is left
unchanged and the run still succeeds.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			updaterOptions := &updater.Options{
				ConfigPath:   configPath,
				ManifestPath: manifestPath,
				Version:      args[0],
				LogLevel:     logLevel,
				Validate:     validate,
			}

			return updater.Run(ctx, updaterOptions)
		},
	}
)

// Execute runs the manifest-updater CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to settings file")
	rootCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "path to manifest file (default from settings)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "diagnostics level: debug, info, warn, error, fatal")
	rootCmd.Flags().BoolVar(&validate, "validate", false, "require the new version to be valid semver")
}
