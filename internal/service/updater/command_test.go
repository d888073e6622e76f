package updater

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRun_RequiresVersion verifies an empty version argument is rejected
// before any file is touched.
func TestRun_RequiresVersion(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), &Options{})
	require.ErrorIs(t, err, errVersionRequired)
}

// TestRun_ValidateRejectsNonSemver verifies the opt-in semver gate.
func TestRun_ValidateRejectsNonSemver(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), &Options{
		Version:  "not-a-version",
		Validate: true,
	})
	require.ErrorContains(t, err, "invalid semantic version")
}
