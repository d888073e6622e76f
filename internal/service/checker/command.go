package checker

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/johncarney/manifest-sync/internal/config"
	"github.com/johncarney/manifest-sync/internal/logger"
	manifestrepo "github.com/johncarney/manifest-sync/internal/repository/manifest"
	"github.com/johncarney/manifest-sync/internal/service/common"
)

// Options controls the checker behavior and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ManifestPath overrides the manifest location from the settings.
	ManifestPath string
	// LogLevel overrides the diagnostics level from the settings.
	LogLevel string
	// Out receives the confirmation line; defaults to stdout.
	Out io.Writer
}

// MismatchError reports that the version embedded in the download URL
// differs from the manifest version field. It is the one expected failure
// of the checker, everything else is a crash-style error.
type MismatchError struct {
	// DownloadVersion is the version derived from the download URL.
	DownloadVersion string
	// ManifestVersion is the value of the manifest version field.
	ManifestVersion string
}

// Error renders the contractual CI failure message, download version first.
//
//nolint:stylecheck // The capitalized message format is part of the CI contract.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("Download version does not match manifest version: %s != %s",
		e.DownloadVersion, e.ManifestVersion)
}

// Run verifies that the manifest download URL embeds the manifest version.
// On match it prints a single confirmation line and returns nil; on
// mismatch it returns a *MismatchError for the CLI to surface with a
// non-zero exit status.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "manifest-checker")

	// Load settings; a missing default settings file yields defaults.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if err := common.ApplyLogLevel(cfg.LogLevel, opts.LogLevel); err != nil {
		return err
	}

	manifestPath := cfg.ManifestPath
	if opts.ManifestPath != "" {
		manifestPath = opts.ManifestPath
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	repo := manifestrepo.NewFileRepository(manifestPath)

	m, err := repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}

	version, err := m.Version()
	if err != nil {
		return err
	}

	downloadVersion, err := m.DownloadVersion()
	if err != nil {
		return err
	}

	if downloadVersion != version {
		return &MismatchError{
			DownloadVersion: downloadVersion,
			ManifestVersion: version,
		}
	}

	logger.DebugKV(ctx, "Manifest is consistent", "path", repo.Path(), "version", version)

	_, err = fmt.Fprintf(out, "Download version matches manifest version: %s\n", version)
	if err != nil {
		return fmt.Errorf("write confirmation: %w", err)
	}

	return nil
}
