package version

import (
	"fmt"
)

// These variables are populated at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns the version line printed by `workwise version`.
func Info() string {
	return fmt.Sprintf("workwise %s (commit %s, built %s)", Version, Commit, Date)
}

// Short is the bare version used for cobra's --version flag.
func Short() string {
	return Version
}
