// Package misc keeps small helpers needed across the program which do not
// belong anywhere else.
package misc

import (
	"runtime/debug"
)

var (
	appName = "typst-outline"
	version = "dev"
)

// GetAppName returns short program name used for logging, temporary files and
// report naming.
func GetAppName() string {
	return appName
}

// GetVersion returns program version embedded at build time, falling back to
// module information when built without ldflags.
func GetVersion() string {
	if version != "dev" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return version
}

// GetGitHash returns VCS revision recorded in build information, if any.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
