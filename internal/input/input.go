// Package input resolves the initcode argument, which is either a path to
// a file holding hex or the hex itself.
package input

import (
	"fmt"
	"os"
)

// Source records where the initcode came from.
type Source int

const (
	// SourceLiteral means the argument itself was the hex blob.
	SourceLiteral Source = iota
	// SourceFile means the argument named a regular file that was read.
	SourceFile
)

// String returns a human readable name for the source.
func (s Source) String() string {
	if s == SourceFile {
		return "file"
	}
	return "literal"
}

// Resolve returns the hex blob for spec.
//
// If spec names an existing regular file, its full contents are returned.
// Anything else, including directories and names that cannot be stat'ed,
// is returned unchanged as a literal.
func Resolve(spec string) (string, Source, error) {
	info, err := os.Stat(spec)
	if err != nil || !info.Mode().IsRegular() {
		return spec, SourceLiteral, nil
	}

	data, err := os.ReadFile(spec)
	if err != nil {
		return "", SourceFile, fmt.Errorf("failed to read initcode file %q: %w", spec, err)
	}
	return string(data), SourceFile, nil
}
