// Package misc holds small cross-cutting helpers: build identification and
// the process-wide unique-ID sequence.
package misc

import "runtime/debug"

// appName identifies the program in logs and generated file names.
const appName = "htmlpdf"

// GetAppName returns the program name used for logs and temp files.
func GetAppName() string {
	return appName
}

// GetVersion returns the module version recorded in the build info, or
// "devel" for builds outside a released module.
func GetVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "devel"
}

// GetGitHash returns the VCS revision baked into the build, empty when the
// build carries none.
func GetGitHash() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}
