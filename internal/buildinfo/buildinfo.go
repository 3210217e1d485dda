// Package buildinfo carries the version stamped in by the linker:
//
//	go build -ldflags "-X pagegrid/internal/buildinfo.Version=v1.2.0"
package buildinfo

import (
	"fmt"
	"runtime"
)

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for titles and log lines.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Long is the multi-line report printed by the version command.
func Long() string {
	return fmt.Sprintf("pagegrid - paged widget grid\n\n  Version: %s\n  Commit:  %s\n  Built:   %s\n  Runtime: %s\n",
		Version, Commit, Date, runtime.Version())
}
