// Package livemark renders Markdoc documents as a live terminal preview.
//
// The engine lives in package preview, the Bubble Tea host in package
// editor.
package livemark

import (
	_ "embed"
	"regexp"
	"runtime/debug"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Version returns the release version, SemVer without the leading `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// Revision returns the short VCS revision the binary was built from, with a
// "+dirty" suffix for modified trees, or "" when the build carries no VCS
// stamp (tests, go run).
func Revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if rev != "" && dirty {
		rev += "+dirty"
	}
	return rev
}

// FullVersion joins Version and Revision for display.
func FullVersion() string {
	if rev := Revision(); rev != "" {
		return Version() + " : " + rev
	}
	return Version()
}
