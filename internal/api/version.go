package api

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// VersionHeader carries the server's API version on every response.
const VersionHeader = "X-API-Version"

// canonicalVersion accepts "1.4", "v1.4.0" and similar.
func canonicalVersion(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("empty version")
	}
	if v[0] != 'v' {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("invalid version %q", v)
	}
	return semver.Canonical(v), nil
}

// checkVersion rejects a server whose major version differs from the
// client's. A missing or unparsable header is accepted.
func checkVersion(client, server string) error {
	if server == "" {
		return nil
	}
	s, err := canonicalVersion(server)
	if err != nil {
		return nil
	}
	if semver.Major(s) != semver.Major(client) {
		return &VersionError{Server: s, Client: client}
	}
	return nil
}
