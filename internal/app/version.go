package app

import (
	"fmt"
	"runtime/debug"
)

const appName = "emission-engine"

// Build metadata, injected with
// -ldflags "-X github.com/greencampus/emission-engine/internal/app.Version=1.2.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion describes the running build for startup logs and /health.
// Without ldflags the VCS revision embedded by the go tool is used.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && commit == "unknown":
				commit = s.Value
			case s.Key == "vcs.time" && built == "unknown":
				built = s.Value
			}
		}
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}
