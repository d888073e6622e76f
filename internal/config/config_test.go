package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johncarney/manifest-sync/internal/domain/manifest"
)

// TestValidate checks default filling and log level validation.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Empty settings are filled with defaults.
	cfg := new(Config)

	require.NoError(t, Validate(cfg))
	require.Equal(t, DefaultManifestFilename, cfg.ManifestPath)
	require.Equal(t, manifest.DefaultReleaseMarker, cfg.ReleaseMarker)
	require.Equal(t, DefaultLogLevel, cfg.LogLevel)

	// Bad log level.
	cfg = &Config{
		LogLevel: "loud",
	}

	require.Error(t, Validate(cfg))
}

// TestLoad_MissingDefaultFile ensures a bare checkout gets defaults.
func TestLoad_MissingDefaultFile(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

// TestLoad_MissingExplicitFile ensures a user-specified path must exist.
func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	cfg := &Config{
		ManifestPath:  "packages/module.json",
		ReleaseMarker: "/artifacts/",
		LogLevel:      "debug",
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.ManifestPath, loaded.ManifestPath)
	require.Equal(t, cfg.ReleaseMarker, loaded.ReleaseMarker)
	require.Equal(t, cfg.LogLevel, loaded.LogLevel)

	// File exists.
	_, err = os.Stat(path)
	require.NoError(t, err)
}
