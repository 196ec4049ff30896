// Package version exposes build metadata injected through -ldflags.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at link time:
//
//	-X github.com/Sumatoshi-tech/past/pkg/version.Version=v0.3.0
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String renders the metadata on one line.
func String() string {
	return fmt.Sprintf("past %s (commit %s, built %s)", resolved(), Commit, Date)
}

// resolved prefers the module version recorded by `go install` when no
// version was linked in.
func resolved() string {
	if Version != "dev" {
		return Version
	}

	info, ok := debug.ReadBuildInfo()
	if ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	return Version
}
