// Package version derives the build identity stamped into startup logs and
// the health payload. An -ldflags override wins over VCS build info; test
// binaries and builds from an exported tree report "dev".
package version

import "runtime/debug"

// AppName labels log lines and version strings.
const AppName = "thoth"

// commitOverride is injected with -ldflags for container images built
// without a .git directory.
var commitOverride string

// GitCommit is the short revision the binary was built from.
var GitCommit = resolveCommit()

func resolveCommit() string {
	if commitOverride != "" {
		return shortRev(commitOverride)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return shortRev(s.Value)
			}
		}
	}
	return "dev"
}

func shortRev(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns the "thoth/<commit>" form used in startup logs.
func Full() string {
	return AppName + "/" + GitCommit
}
