package common

import (
	"errors"
	"fmt"

	"github.com/johncarney/manifest-sync/internal/logger"
)

// errUnknownLogLevel is returned when a flag-supplied level does not parse.
var errUnknownLogLevel = errors.New("unknown log level")

// ApplyLogLevel sets the global diagnostics level. The override (from a
// command line flag) wins over the configured value. Configured values
// reach this point already validated, so a parse failure can only come
// from the override.
func ApplyLogLevel(configured, override string) error {
	value := configured
	if override != "" {
		value = override
	}

	if value == "" {
		return nil
	}

	lvl, ok := logger.ParseLogLevel(value)
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, value)
	}

	logger.SetLevel(lvl)

	return nil
}
