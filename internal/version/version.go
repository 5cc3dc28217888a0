// Package version reports the build identity of the cardform binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// Set at link time:
//
//	go build -ldflags="-X github.com/muurk/cardform/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/cardform/internal/version.Commit=abc123"
//
// Unset values are filled from the embedded VCS stamp, then from "dev".
var (
	Version = ""
	Commit  = ""
)

const shortHashLen = 7

// Info is the resolved build identity.
type Info struct {
	Version   string
	Commit    string
	Dirty     bool
	BuiltAt   time.Time
	GoVersion string
}

func init() {
	info := resolve(Version, Commit, readSettings())
	Version, Commit = info.Version, info.Commit
	if info.Dirty {
		Commit += "-dirty"
	}
}

func readSettings() map[string]string {
	settings := map[string]string{}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return settings
	}
	for _, s := range bi.Settings {
		settings[s.Key] = s.Value
	}
	return settings
}

// resolve merges link-time values with VCS build settings.
func resolve(version, commit string, settings map[string]string) Info {
	info := Info{Version: version, Commit: commit, GoVersion: runtime.Version()}

	if t, err := time.Parse(time.RFC3339, settings["vcs.time"]); err == nil {
		info.BuiltAt = t
	}

	if info.Commit == "" {
		rev := settings["vcs.revision"]
		if len(rev) > shortHashLen {
			rev = rev[:shortHashLen]
		}
		info.Commit = rev
		info.Dirty = rev != "" && settings["vcs.modified"] == "true"
	}

	if info.Version == "" {
		if !info.BuiltAt.IsZero() {
			info.Version = "dev-" + info.BuiltAt.Format("20060102")
		} else {
			info.Version = "dev"
		}
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	return info
}

// Full returns the version with its commit.
func Full() string {
	return fmt.Sprintf("%s (commit: %s, %s)", Version, Commit, runtime.Version())
}
