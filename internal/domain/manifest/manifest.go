package manifest

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

const (
	// VersionField is the manifest key holding the canonical version string.
	VersionField = "version"
	// DownloadField is the manifest key holding the release download URL.
	DownloadField = "download"

	// DefaultReleaseMarker is the literal URL marker preceding the
	// version-shaped segment in the download URL.
	DefaultReleaseMarker = "/releases/download/"
)

var (
	// ErrInvalidJSON is returned when the manifest bytes do not parse as JSON.
	ErrInvalidJSON = errors.New("manifest is not valid JSON")
	// ErrNotObject is returned when the manifest root is not a JSON object.
	ErrNotObject = errors.New("manifest is not a JSON object")
	// ErrNoVersion is returned when the version field is absent.
	ErrNoVersion = errors.New(`manifest has no "version" field`)
	// ErrNoDownload is returned when the download field is absent.
	ErrNoDownload = errors.New(`manifest has no "download" field`)
	// ErrTooFewSegments is returned when the download URL has fewer than
	// two slash-delimited segments and no download version can be derived.
	ErrTooFewSegments = errors.New("download URL has too few path segments")
)

// Manifest wraps the raw JSON document of a module manifest.
// Fields other than version and download are carried through untouched,
// in their original textual order.
type Manifest struct {
	// raw is the JSON document as read from disk, mutated in place.
	raw []byte
	// downloadVersion memoizes the derived download version.
	downloadVersion *string
	// downloadVersionErr memoizes the derivation failure, if any.
	downloadVersionErr error
}

// FromBytes parses the provided bytes and wraps them in a Manifest.
// The input is copied, callers may reuse their buffer.
func FromBytes(data []byte) (*Manifest, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	if !gjson.ParseBytes(data).IsObject() {
		return nil, ErrNotObject
	}

	return &Manifest{
		raw: append([]byte(nil), data...),
	}, nil
}

// Version returns the value of the version field.
func (m *Manifest) Version() (string, error) {
	value := gjson.GetBytes(m.raw, VersionField)
	if !value.Exists() {
		return "", ErrNoVersion
	}

	return value.String(), nil
}

// Download returns the value of the download field.
func (m *Manifest) Download() (string, error) {
	value := gjson.GetBytes(m.raw, DownloadField)
	if !value.Exists() {
		return "", ErrNoDownload
	}

	return value.String(), nil
}

// DownloadVersion derives the version embedded in the download URL:
// the second-to-last slash-delimited segment of the URL.
// The result is computed once per instance and cached until the
// download field is rewritten.
func (m *Manifest) DownloadVersion() (string, error) {
	if m.downloadVersion == nil && m.downloadVersionErr == nil {
		value, err := m.deriveDownloadVersion()
		if err != nil {
			m.downloadVersionErr = err
		} else {
			m.downloadVersion = &value
		}
	}

	if m.downloadVersionErr != nil {
		return "", m.downloadVersionErr
	}

	return *m.downloadVersion, nil
}

// deriveDownloadVersion splits the download URL and picks the
// second-to-last segment.
func (m *Manifest) deriveDownloadVersion() (string, error) {
	download, err := m.Download()
	if err != nil {
		return "", err
	}

	segments := strings.Split(download, "/")
	if len(segments) < 2 {
		return "", fmt.Errorf("%w: %q", ErrTooFewSegments, download)
	}

	return segments[len(segments)-2], nil
}

// SetVersion overwrites the version field with the provided value verbatim.
// The field is created when absent.
func (m *Manifest) SetVersion(version string) error {
	raw, err := sjson.SetBytes(m.raw, VersionField, version)
	if err != nil {
		return fmt.Errorf("set version field: %w", err)
	}

	m.raw = raw

	return nil
}

// RewriteDownload replaces every span between the literal marker and the
// next slash in the download URL with the provided version. All other
// parts of the URL are preserved byte-for-byte.
//
// The returned bool reports whether the marker matched at all. When it
// did not, the download field is left unchanged; callers decide whether
// that deserves a diagnostic.
func (m *Manifest) RewriteDownload(version, marker string) (bool, error) {
	if marker == "" {
		marker = DefaultReleaseMarker
	}

	download, err := m.Download()
	if err != nil {
		return false, err
	}

	pattern, err := regexp.Compile(regexp.QuoteMeta(marker) + `[^/]*/`)
	if err != nil {
		return false, fmt.Errorf("compile marker pattern: %w", err)
	}

	if !pattern.MatchString(download) {
		return false, nil
	}

	// ReplaceAllStringFunc keeps the new version literal: no $-expansion.
	rewritten := pattern.ReplaceAllStringFunc(download, func(string) string {
		return marker + version + "/"
	})

	if rewritten != download {
		raw, err := sjson.SetBytes(m.raw, DownloadField, rewritten)
		if err != nil {
			return false, fmt.Errorf("set download field: %w", err)
		}

		m.raw = raw
		m.downloadVersion = nil
		m.downloadVersionErr = nil
	}

	return true, nil
}

// Render serializes the manifest with 2-space indentation, keys in their
// original order.
func (m *Manifest) Render() []byte {
	//nolint:exhaustruct // Zero Width keeps every object and array expanded.
	return pretty.PrettyOptions(m.raw, &pretty.Options{Indent: "  "})
}
