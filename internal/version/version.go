// Package version holds build-time identification for the ouros CLI and
// the interpreter core it embeds.
package version

import "fmt"

// Version information for the ouros CLI and core.
// These variables can be overridden at build time via -ldflags.

var (
	// Version is the semantic version of the core.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""

	// PythonCompat is the CPython language version Ouros targets.
	PythonCompat = "3.14"

	// SnapshotSchema is the current snapshot codec schema version,
	// mirrored from internal/snapshot's schemaVersion for display purposes.
	SnapshotSchema = 1
)

// VersionString formats a single-line identifier combining the core
// version, the target Python compatibility level, and (when present) the
// commit and build date used for --version output.
func VersionString() string {
	s := fmt.Sprintf("ouros %s (python %s compat)", Version, PythonCompat)
	if GitCommit != "" {
		s += fmt.Sprintf(" commit=%s", GitCommit)
	}
	if BuildDate != "" {
		s += fmt.Sprintf(" built=%s", BuildDate)
	}
	return s
}
