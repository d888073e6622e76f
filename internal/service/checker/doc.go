// Package checker verifies that the version embedded in the manifest's
// download URL matches the manifest's version field. A mismatch is
// reported as a MismatchError so CI pipelines fail the build with a
// descriptive message.
package checker
