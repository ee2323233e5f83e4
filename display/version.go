package display

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Version may be overridden at release time via -ldflags.
var Version = ""

// BuildVersion returns a formatted version string for the named tool,
// falling back to module build info when no version was linked in.
func BuildVersion(name string) string {
	v := Version
	if v == "" {
		v = inferVersion()
	}
	if v == "" {
		return name + " (devel)"
	}
	return fmt.Sprintf("%s v%s", name, v)
}

// inferVersion attempts to infer the module version from build info.
func inferVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return strings.TrimPrefix(info.Main.Version, "v")
	}
	return ""
}
