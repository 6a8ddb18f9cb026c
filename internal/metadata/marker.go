package metadata

import (
	"fmt"

	"github.com/indaco/ctorargs/internal/semver"
)

const (
	// markerPrefix is the hex of "dsolcC" followed by a zero version byte.
	markerPrefix = "64736f6c634300"

	// markerSuffix is the hex of the trailer length, 0x0033.
	markerSuffix = "0033"

	// MarkerLen is the length in hex characters of every marker.
	MarkerLen = len(markerPrefix) + 4 + len(markerSuffix)
)

// Marker returns the lowercase hex marker for v.
//
// Only the minor and patch bytes are encoded. The major number is left
// out and the byte in its position is always 00, matching what 0.x solc
// releases emit.
func Marker(v semver.SolcVersion) string {
	return fmt.Sprintf("%s%02x%02x%s", markerPrefix, v.Minor, v.Patch, markerSuffix)
}

// MarkerFor parses version and returns its marker.
// The error wraps semver.ErrInvalidFormat.
func MarkerFor(version string) (string, error) {
	v, err := semver.ParseSolcVersion(version)
	if err != nil {
		return "", err
	}
	return Marker(v), nil
}
