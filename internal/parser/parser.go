package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/ctorargs/internal/semver"
	"github.com/pelletier/go-toml/v2"
)

// errFieldNotFound is returned by getNestedValue when a path segment is missing.
var errFieldNotFound = errors.New("field not found")

// Reader provides version reading capabilities for multiple file formats.
type Reader struct {
	readFile func(name string) ([]byte, error)
}

// NewReader creates a new Reader that reads from the OS filesystem.
func NewReader() *Reader {
	return &Reader{readFile: os.ReadFile}
}

// Read reads a version from a file based on the provided configuration.
func (r *Reader) Read(cfg FileConfig) (*Result, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("file path is required")
	}

	format := cfg.Format
	if format == "" {
		format = FormatFromPath(cfg.Path)
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("invalid format: %s", format)
	}

	data, err := r.readFile(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", cfg.Path, err)
	}

	if format == FormatRaw {
		return &Result{
			Version: semver.Clean(string(data)),
			Path:    cfg.Path,
			Format:  format,
		}, nil
	}

	obj, err := decode(data, cfg.Path, format)
	if err != nil {
		return nil, err
	}

	fields := DefaultFields(format)
	if cfg.Field != "" {
		fields = []string{cfg.Field}
	}

	version, field, err := lookupVersion(obj, cfg.Path, fields)
	if err != nil {
		return nil, err
	}

	return &Result{
		Version: semver.Clean(version),
		Path:    cfg.Path,
		Format:  format,
		Field:   field,
	}, nil
}

// ReadVersion is a convenience method that reads and returns just the version string.
func (r *Reader) ReadVersion(cfg FileConfig) (string, error) {
	result, err := r.Read(cfg)
	if err != nil {
		return "", err
	}
	return result.Version, nil
}

// decode unmarshals a structured document into a generic map.
func decode(data []byte, path string, format Format) (map[string]any, error) {
	var obj map[string]any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &obj); err != nil {
			return nil, fmt.Errorf("failed to parse JSON in %q: %w", path, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &obj); err != nil {
			return nil, fmt.Errorf("failed to parse YAML in %q: %w", path, err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &obj); err != nil {
			return nil, fmt.Errorf("failed to parse TOML in %q: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	return obj, nil
}

// lookupVersion returns the first field in fields that holds a string.
func lookupVersion(obj map[string]any, path string, fields []string) (string, string, error) {
	for _, field := range fields {
		value, err := getNestedValue(obj, field)
		if errors.Is(err, errFieldNotFound) {
			continue
		}
		if err != nil {
			return "", "", fmt.Errorf("in file %q: %w", path, err)
		}

		version, ok := value.(string)
		if !ok {
			return "", "", fmt.Errorf("field %q in %q is not a string", field, path)
		}
		return version, field, nil
	}

	return "", "", fmt.Errorf("no solc version found in %q (tried %s)", path, strings.Join(fields, ", "))
}

// getNestedValue retrieves a value from a nested map using dot notation.
// Example: "profile.default.solc" accesses obj["profile"]["default"]["solc"]
func getNestedValue(obj map[string]any, field string) (any, error) {
	if field == "" {
		return nil, fmt.Errorf("field path cannot be empty")
	}

	parts := strings.Split(field, ".")
	current := any(obj)

	for i, part := range parts {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q is not an object at path %q", strings.Join(parts[:i], "."), part)
		}

		value, exists := currentMap[part]
		if !exists {
			return nil, fmt.Errorf("%w: %q", errFieldNotFound, field)
		}

		current = value
	}

	return current, nil
}
