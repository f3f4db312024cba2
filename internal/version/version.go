// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version houses the version information for ecctool.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// identAlphabet defines the allowed characters for the dot separated
// identifiers of the pre-release and build metadata portions of a semantic
// version string.
const identAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

// These variables define the application version and follow the semantic
// versioning 2.0.0 spec (https://semver.org/).
var (
	// Version is the application version.  It may be overridden during the
	// build process with:
	// '-ldflags "-X github.com/decred/weierstrass/internal/version.Version=fullsemver"'
	//
	// It MUST be a full semantic version or the package will panic at
	// runtime.
	Version = "0.1.0-pre"

	// NOTE: The following values are set via init by parsing the above Version
	// string.

	Major         uint
	Minor         uint
	Patch         uint
	PreRelease    string
	BuildMetadata string
)

// parseNumber parses a numeric version component which must not have leading
// zeros.
func parseNumber(s, fieldName string) (uint, error) {
	if len(s) > 1 && s[0] == '0' {
		return 0, fmt.Errorf("malformed semver %s: leading zero in %q",
			fieldName, s)
	}
	val, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("malformed semver %s: %w", fieldName, err)
	}
	return uint(val), nil
}

// checkIdentifiers returns an error if the passed dot separated identifiers
// are empty or contain characters outside of identAlphabet.  Numeric
// pre-release identifiers must not have leading zeros.
func checkIdentifiers(s, fieldName string, numericRule bool) error {
	for _, ident := range strings.Split(s, ".") {
		if ident == "" {
			return fmt.Errorf("malformed semver %s: empty identifier",
				fieldName)
		}
		for _, r := range ident {
			if !strings.ContainsRune(identAlphabet, r) {
				return fmt.Errorf("malformed semver %s: %q invalid",
					fieldName, r)
			}
		}
		if numericRule && len(ident) > 1 && ident[0] == '0' &&
			strings.Trim(ident, "0123456789") == "" {

			return fmt.Errorf("malformed semver %s: leading zero in %q",
				fieldName, ident)
		}
	}
	return nil
}

// parseSemVer parses the semver components of the provided string.
func parseSemVer(s string) (major, minor, patch uint, pre, build string, err error) {
	core := s
	if i := strings.IndexByte(core, '+'); i >= 0 {
		core, build = core[:i], core[i+1:]
		if err = checkIdentifiers(build, "build metadata", false); err != nil {
			return 0, 0, 0, "", "", err
		}
	}
	if i := strings.IndexByte(core, '-'); i >= 0 {
		core, pre = core[:i], core[i+1:]
		if err = checkIdentifiers(pre, "pre-release", true); err != nil {
			return 0, 0, 0, "", "", err
		}
	}

	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		err = fmt.Errorf("malformed version string %q: does not conform to "+
			"semver specification", s)
		return 0, 0, 0, "", "", err
	}
	if major, err = parseNumber(parts[0], "major"); err != nil {
		return 0, 0, 0, "", "", err
	}
	if minor, err = parseNumber(parts[1], "minor"); err != nil {
		return 0, 0, 0, "", "", err
	}
	if patch, err = parseNumber(parts[2], "patch"); err != nil {
		return 0, 0, 0, "", "", err
	}
	return major, minor, patch, pre, build, nil
}

func init() {
	var err error
	Major, Minor, Patch, PreRelease, BuildMetadata, err = parseSemVer(Version)
	if err != nil {
		panic(err)
	}
	if BuildMetadata == "" {
		BuildMetadata = vcsCommitID()
		if BuildMetadata != "" {
			Version = fmt.Sprintf("%s+%s", Version, BuildMetadata)
		}
	}
}

// String returns the application version as a properly formed string per the
// semantic versioning 2.0.0 spec (https://semver.org/).
func String() string {
	return Version
}
