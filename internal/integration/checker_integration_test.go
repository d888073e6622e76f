package integration

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johncarney/manifest-sync/internal/service/checker"
)

// writeManifest drops manifest JSON into a temp dir and returns its path.
func writeManifest(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "module.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	return path
}

// TestChecker_Match verifies the confirmation line and nil error when the
// download URL embeds the manifest version.
func TestChecker_Match(t *testing.T) {
	t.Parallel()

	path := writeManifest(t,
		`{"version": "1.0.0", "download": "https://example.com/releases/download/1.0.0/file.zip"}`)

	var out bytes.Buffer

	err := checker.Run(context.Background(), &checker.Options{
		ManifestPath: path,
		Out:          &out,
	})
	require.NoError(t, err)
	require.Equal(t, "Download version matches manifest version: 1.0.0\n", out.String())
}

// TestChecker_Mismatch verifies the failure message carries the download
// version first and the manifest version second.
func TestChecker_Mismatch(t *testing.T) {
	t.Parallel()

	path := writeManifest(t,
		`{"version": "1.0.0", "download": "https://example.com/releases/download/0.9.0/file.zip"}`)

	var out bytes.Buffer

	err := checker.Run(context.Background(), &checker.Options{
		ManifestPath: path,
		Out:          &out,
	})
	require.EqualError(t, err,
		"Download version does not match manifest version: 0.9.0 != 1.0.0")

	var mismatch *checker.MismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, "0.9.0", mismatch.DownloadVersion)
	require.Equal(t, "1.0.0", mismatch.ManifestVersion)

	// Nothing was printed on the success stream.
	require.Empty(t, out.String())
}

// TestChecker_MissingManifest verifies a missing file is a crash-style error.
func TestChecker_MissingManifest(t *testing.T) {
	t.Parallel()

	err := checker.Run(context.Background(), &checker.Options{
		ManifestPath: filepath.Join(t.TempDir(), "module.json"),
		Out:          new(bytes.Buffer),
	})
	require.ErrorContains(t, err, "load manifest")
}

// TestChecker_MalformedDownload verifies a download URL without enough
// path segments fails the run.
func TestChecker_MalformedDownload(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, `{"version": "1.0.0", "download": "file.zip"}`)

	err := checker.Run(context.Background(), &checker.Options{
		ManifestPath: path,
		Out:          new(bytes.Buffer),
	})
	require.ErrorContains(t, err, "too few path segments")
}
