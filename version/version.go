// Package version carries build metadata stamped at link time.
package version

import (
	"runtime"
	"runtime/debug"
)

// Set via -ldflags at release build time.
var (
	GitRelease    = "dev"
	GitCommit     = ""
	GitCommitDate = ""
)

// GoInfo reports the toolchain that built the binary.
var GoInfo = runtime.Version()

func init() {
	if GitCommit != "" {
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			GitCommit = setting.Value
		case "vcs.time":
			GitCommitDate = setting.Value
		}
	}
}

// String returns a single-line version description
func String() string {
	if GitCommit == "" {
		return GitRelease
	}
	commit := GitCommit
	if len(commit) > 12 {
		commit = commit[:12]
	}
	return GitRelease + " (" + commit + ")"
}
