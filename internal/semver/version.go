package semver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SolcVersion represents a compiler version (major.minor.patch).
type SolcVersion struct {
	Major int
	Minor int
	Patch int
}

// ErrInvalidFormat is returned when a version string is not exactly three
// dot-separated integers, or a component is out of range.
var ErrInvalidFormat = errors.New("invalid version format")

// maxVersionLength is the maximum allowed length for a version string.
const maxVersionLength = 128

// maxByteComponent is the largest minor or patch value that fits the
// single byte the compiler reserves for it in the metadata trailer.
const maxByteComponent = 0xff

// ParseSolcVersion parses a "major.minor.patch" string.
//
// The input is trimmed of surrounding whitespace and then split on ".".
// Returns ErrInvalidFormat (wrapped, with the offending input in the
// message) when:
//   - the split does not yield exactly three parts ("1.2", "1.2.3.4")
//   - a part is not a base-10 integer ("0.8.x", "v0.8.29")
//   - a part is negative, or minor/patch is above 255
func ParseSolcVersion(s string) (SolcVersion, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) > maxVersionLength {
		return SolcVersion{}, fmt.Errorf("%w: version string exceeds maximum length of %d", ErrInvalidFormat, maxVersionLength)
	}

	parts := strings.Split(trimmed, ".")
	if len(parts) != 3 {
		return SolcVersion{}, fmt.Errorf("%w: %s", ErrInvalidFormat, s)
	}

	major, err := parseComponent("major", parts[0], s)
	if err != nil {
		return SolcVersion{}, err
	}
	minor, err := parseComponent("minor", parts[1], s)
	if err != nil {
		return SolcVersion{}, err
	}
	patch, err := parseComponent("patch", parts[2], s)
	if err != nil {
		return SolcVersion{}, err
	}

	if minor > maxByteComponent || patch > maxByteComponent {
		return SolcVersion{}, fmt.Errorf("%w: %s: minor and patch must be at most %d", ErrInvalidFormat, s, maxByteComponent)
	}

	return SolcVersion{Major: major, Minor: minor, Patch: patch}, nil
}

func parseComponent(name, part, input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(part))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: invalid %s version %q", ErrInvalidFormat, input, name, part)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %s: %s version must not be negative", ErrInvalidFormat, input, name)
	}
	return n, nil
}

// Clean strips decorations that project files commonly put around a
// pinned compiler version: a leading "v", "=" or "^", and build metadata
// after "+" (e.g. "0.8.29+commit.ab55807c" -> "0.8.29").
func Clean(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "v=^")
	if i := strings.IndexByte(s, '+'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
