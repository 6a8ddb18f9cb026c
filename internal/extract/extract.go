// Package extract locates the metadata marker in initcode and returns the
// constructor argument bytes that trail it.
package extract

import "strings"

// Normalize trims surrounding whitespace, lowercases data and removes a
// single leading "0x".
func Normalize(data string) string {
	data = strings.ToLower(strings.TrimSpace(data))
	return strings.TrimPrefix(data, "0x")
}

// ConstructorArgs returns everything after the first occurrence of pattern
// in data, prefixed with "0x".
//
// The second return value is false when the pattern does not occur, or
// when it occurs with nothing after it. Neither case is an error.
func ConstructorArgs(data, pattern string) (string, bool) {
	data = Normalize(data)

	idx := strings.Index(data, strings.ToLower(pattern))
	if idx == -1 {
		return "", false
	}

	start := idx + len(pattern)
	if start >= len(data) {
		return "", false
	}

	return "0x" + data[start:], true
}
