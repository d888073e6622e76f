package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/johncarney/manifest-sync/internal/domain/manifest"
	"github.com/johncarney/manifest-sync/internal/logger"
)

// Config holds tool parameters shared by the manifest binaries.
type Config struct {
	// ManifestPath is the path to the manifest JSON file.
	ManifestPath string `yaml:"manifest_path"`
	// ReleaseMarker is the literal URL marker preceding the version
	// segment in the download URL.
	ReleaseMarker string `yaml:"release_marker"`
	// LogLevel is the minimum level for stderr diagnostics.
	LogLevel string `yaml:"log_level"`
}

const (
	// DefaultConfigFilename is the default filename for tool settings.
	DefaultConfigFilename = "manifest-sync.yaml"

	// DefaultManifestFilename is the default filename for the manifest JSON.
	DefaultManifestFilename = "module.json"

	// DefaultLogLevel is the default stderr diagnostics level.
	DefaultLogLevel = "warn"

	// DefaultFilePermissions is the default file permission for written files.
	DefaultFilePermissions = 0o644
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errUnknownLogLevel is returned when the log level does not parse.
	errUnknownLogLevel = errors.New("unknown log level")
)

// Default returns a configuration with every field at its default value.
// It reproduces the behavior of running the tools with no settings file.
func Default() *Config {
	return &Config{
		ManifestPath:  DefaultManifestFilename,
		ReleaseMarker: manifest.DefaultReleaseMarker,
		LogLevel:      DefaultLogLevel,
	}
}

// Load reads configuration from the provided path and validates essential
// fields. A missing file at the default location is not an error: the tools
// must work out of the box in a bare checkout, so defaults apply.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	path = filepath.Clean(path)

	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultConfigFilename {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate fills defaults for omitted fields and rejects malformed values.
func Validate(cfg *Config) error {
	if cfg.ManifestPath == "" {
		cfg.ManifestPath = DefaultManifestFilename
	}

	if cfg.ReleaseMarker == "" {
		cfg.ReleaseMarker = manifest.DefaultReleaseMarker
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, cfg.LogLevel)
	}

	return nil
}
