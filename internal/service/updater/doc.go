// Package updater bumps the manifest to a new version: it overwrites the
// version field and rewrites the marker-anchored segment of the download
// URL, then persists the manifest in place with its key order intact.
package updater
