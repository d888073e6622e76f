// Package manifest implements persistence for the module manifest.
//
// The FileRepository stores and loads the manifest as JSON on disk and
// exposes a Repository interface that the checker and updater services
// depend on.
package manifest
