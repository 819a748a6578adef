// Package dosedit holds release metadata for the dosedit editor. The editor
// itself lives in the buffer, engine and editor packages.
package dosedit

import (
	_ "embed"
	"regexp"
	"strings"
)

// semverRE matches SemVer 2.0.0 without a leading "v".
var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version is the release version, e.g. "0.1.0".
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag is Version as a git tag, e.g. "v0.1.0".
func VersionTag() string {
	return "v" + Version()
}

func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
