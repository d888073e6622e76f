// Package config defines tool settings used by the manifest binaries and
// provides helpers to load, validate and save them in YAML format.
//
// The Config type holds the manifest path, the release URL marker and the
// diagnostics log level. All fields are optional; a missing settings file
// at the default location yields the built-in defaults, so the binaries
// run with no configuration at all.
package config
