// Package version reports the fixed identifying string of the recognizer
// engine.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Name is the product name printed in front of the version.
const Name = "GuessIt"

// number is the engine version. Overridable at build time with
// -ldflags "-X github.com/backmassage/guessit/internal/version.number=...".
var number = "1.0.0"

// Commit is injected at build time via -ldflags; "unknown" otherwise.
var Commit = "unknown"

// String returns the identifying string, e.g. "GuessIt 1.0.0".
func String() string {
	return Name + " " + Semver().String()
}

// Semver returns the parsed engine version. An unparsable build-time
// override falls back to 0.0.0 so String never fails.
func Semver() *semver.Version {
	v, err := Parse(number)
	if err != nil {
		return semver.New(0, 0, 0, "", "")
	}
	return v
}

// Parse parses a version string, tolerating a leading "v".
func Parse(s string) (*semver.Version, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(s), "v"))
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", s, err)
	}
	return v, nil
}

// Satisfies reports whether the engine version meets constraint, e.g.
// ">= 1.0, < 2".
func Satisfies(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("invalid constraint %q: %w", constraint, err)
	}
	return c.Check(Semver()), nil
}
