// Package gridcanvas is a spreadsheet grid engine with a terminal front end.
//
// The grid package holds the engine: layout, selection and undo history.
// The view package renders a grid as a Bubble Tea component.
package gridcanvas

import (
	_ "embed"
	"regexp"
	"runtime/debug"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the module version in SemVer format, without a leading v.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version as a git tag.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v is a SemVer 2.0.0 version without a leading v.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string
	GoVersion string
	// Revision is the VCS commit the binary was built from, when known.
	Revision  string
	Modified  bool
}

// ReadBuildInfo combines the embedded version with what the Go toolchain
// stamped into the binary.
func ReadBuildInfo() BuildInfo {
	info := BuildInfo{Version: Version()}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String formats the info as a single line, e.g.
// "gridcanvas v0.1.0 (1a2b3c4d5e6f, go1.25.7)".
func (b BuildInfo) String() string {
	var extra []string
	if rev := b.Revision; rev != "" {
		if len(rev) > 12 {
			rev = rev[:12]
		}
		if b.Modified {
			rev += "-dirty"
		}
		extra = append(extra, rev)
	}
	if b.GoVersion != "" {
		extra = append(extra, b.GoVersion)
	}

	s := "gridcanvas v" + b.Version
	if len(extra) > 0 {
		s += " (" + strings.Join(extra, ", ") + ")"
	}
	return s
}
