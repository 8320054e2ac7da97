// Package version exposes build metadata injected by the linker.
package version

import "fmt"

// These variables are populated via LDFLAGS at build time (see magefile.go).
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String formats the metadata for -version output.
func String() string {
	return fmt.Sprintf("chartstyle %s (%s, built %s)", Version, CommitHash, BuildDate)
}
