// Package version exposes the toolkit's build version. Version is set at
// compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/arrkit/version.Version=1.2.0"
package version

import (
	"runtime/debug"
	"strings"
)

// Version is set at build time. "dev" means a local, unreleased build.
var Version = "dev"

// Info represents version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	IsRelease bool   `json:"is_release"`
}

// Get returns version information, filling commit and Go version from the
// embedded build info when available.
func Get() Info {
	info := Info{
		Version:   Version,
		IsRelease: Version != "dev" && !strings.Contains(Version, "dirty"),
	}
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = buildInfo.GoVersion
		for _, setting := range buildInfo.Settings {
			if setting.Key == "vcs.revision" {
				info.GitCommit = setting.Value
				if len(info.GitCommit) > 7 {
					info.GitCommit = info.GitCommit[:7]
				}
			}
		}
	}
	return info
}

// Short returns "version" or "version-commit" when the commit is known.
func Short() string {
	info := Get()
	if info.GitCommit == "" {
		return info.Version
	}
	return info.Version + "-" + info.GitCommit
}
