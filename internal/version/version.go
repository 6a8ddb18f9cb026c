// Package version reports the build version of the binary.
package version

import "runtime/debug"

// version is set at build time with -ldflags "-X ...internal/version.version=1.2.3".
var version = ""

// GetVersion returns the linked version, the module version recorded by
// "go install", or "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
