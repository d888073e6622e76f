package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/johncarney/manifest-sync/internal/config"
	"github.com/johncarney/manifest-sync/internal/service/checker"
	"github.com/johncarney/manifest-sync/internal/version"
)

var (
	// configPath stores the path to the settings YAML file.
	configPath string
	// manifestPath overrides the manifest location from the settings.
	manifestPath string
	// logLevel overrides the diagnostics level from the settings.
	logLevel string

	// rootCmd represents the base command for checking manifest consistency.
	rootCmd = &cobra.Command{
		Use:   "manifest-checker",
		Short: "Verify the manifest download URL matches its version.",
		Long: `CI check that keeps the module manifest internally consistent.

Reads module.json from the current directory, derives the version embedded
in the download URL (the second-to-last path segment) and compares it to
the manifest's version field. On a match it prints a confirmation and
exits 0; on a mismatch it reports both versions and exits non-zero so the
pipeline fails.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			checkerOptions := &checker.Options{
				ConfigPath:   configPath,
				ManifestPath: manifestPath,
				LogLevel:     logLevel,
				Out:          cmd.OutOrStdout(),
			}

			return checker.Run(ctx, checkerOptions)
		},
	}
)

// Execute runs the manifest-checker CLI and exits with non-zero status on error.
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
}
