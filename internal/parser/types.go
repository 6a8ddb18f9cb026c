package parser

import (
	"path/filepath"
	"strings"
)

// Format represents the supported file formats for version parsing.
type Format string

const (
	// FormatJSON is for JSON files (Foundry/Hardhat build artifacts).
	FormatJSON Format = "json"

	// FormatYAML is for YAML files.
	FormatYAML Format = "yaml"

	// FormatTOML is for TOML files (foundry.toml).
	FormatTOML Format = "toml"

	// FormatRaw is for plain text files where the entire content is the version.
	FormatRaw Format = "raw"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTOML, FormatRaw:
		return true
	default:
		return false
	}
}

// FormatFromPath guesses the format from the file extension,
// falling back to FormatRaw.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatRaw
	}
}

// DefaultFields returns the field paths tried, in order, when no field is
// given for a structured format.
func DefaultFields(f Format) []string {
	switch f {
	case FormatTOML:
		return []string{"profile.default.solc", "profile.default.solc_version"}
	case FormatYAML:
		return []string{"solc", "solc_version"}
	case FormatJSON:
		return []string{"metadata.compiler.version", "solcVersion"}
	default:
		return nil
	}
}

// FileConfig describes how to read a version from a specific file.
type FileConfig struct {
	// Path is the file path (absolute or relative).
	Path string

	// Format specifies the file format. Empty means FormatFromPath(Path).
	Format Format

	// Field is the dot-notation path to the version field (for JSON/YAML/TOML).
	// Empty means DefaultFields(Format).
	// Example: "profile.default.solc", "metadata.compiler.version"
	Field string
}

// Result represents the result of reading a version from a file.
type Result struct {
	// Version is the extracted version string, with build metadata and
	// range operators removed.
	Version string

	// Path is the file path that was read.
	Path string

	// Format is the format that was used.
	Format Format

	// Field is the field path that matched (for structured formats).
	Field string
}
