// Package manifest models the module manifest as an ordered JSON document.
//
// The Manifest type exposes the version and download fields, derives the
// download version from the URL path, and rewrites both fields for a
// release bump without disturbing any other part of the document.
package manifest
