package pepparse

import "regexp"

var versionStatusRe = regexp.MustCompile(`Python (?P<version>\d\.\d+) \((?P<status>.*)\)`)

// VersionStatus is a Python release and its support status,
// e.g. "3.11" and "stable".
type VersionStatus struct {
	Version string
	Status  string
}

// ParseVersionStatus extracts the version and status from link text of the
// form "Python 3.11 (stable)". The pattern may occur anywhere in text.
// Reports false when text does not contain the pattern.
func ParseVersionStatus(text string) (VersionStatus, bool) {
	m := versionStatusRe.FindStringSubmatch(text)
	if m == nil {
		return VersionStatus{}, false
	}
	return VersionStatus{
		Version: m[versionStatusRe.SubexpIndex("version")],
		Status:  m[versionStatusRe.SubexpIndex("status")],
	}, true
}
