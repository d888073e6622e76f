package updater

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/johncarney/manifest-sync/internal/config"
	"github.com/johncarney/manifest-sync/internal/logger"
	manifestrepo "github.com/johncarney/manifest-sync/internal/repository/manifest"
	"github.com/johncarney/manifest-sync/internal/service/common"
)

// Options are inputs accepted by the updater entry point.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ManifestPath overrides the manifest location from the settings.
	ManifestPath string
	// Version is the new version string, applied verbatim.
	Version string
	// LogLevel overrides the diagnostics level from the settings.
	LogLevel string
	// Validate requires Version to parse as a semantic version.
	Validate bool
}

// errVersionRequired is returned when no version argument was supplied.
var errVersionRequired = errors.New("new version must be provided")

// Run sets the manifest version to the supplied value, rewrites the
// version segment of the download URL, and overwrites the manifest file
// in place. When the download URL does not contain the release marker it
// is left unchanged; the run still succeeds, with a warning on stderr.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "manifest-updater")

	if opts.Version == "" {
		return errVersionRequired
	}

	if opts.Validate {
		if _, err := semver.NewVersion(opts.Version); err != nil {
			return fmt.Errorf("invalid semantic version %q: %w", opts.Version, err)
		}
	}

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

	repo := manifestrepo.NewFileRepository(manifestPath)

	m, err := repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}

	if err := m.SetVersion(opts.Version); err != nil {
		return err
	}

	matched, err := m.RewriteDownload(opts.Version, cfg.ReleaseMarker)
	if err != nil {
		return fmt.Errorf("rewrite download URL: %w", err)
	}

	if !matched {
		// The version field and the download URL now diverge; surfaced as
		// a warning only, the historical contract is a quiet success.
		logger.WarnKV(ctx, "Download URL does not contain the release marker, leaving it unchanged",
			"marker", cfg.ReleaseMarker)
	}

	if err := repo.Save(ctx, m); err != nil {
		return fmt.Errorf("save manifest: %w", err)
	}

	logger.InfoKV(ctx, "Manifest updated", "path", repo.Path(), "version", opts.Version)

	return nil
}
