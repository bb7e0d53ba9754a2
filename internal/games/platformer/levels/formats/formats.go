// Package formats provides level pack file format parsers.
package formats

import "fmt"

// Level is one parsed level plan.
type Level struct {
	ID   string
	Name string
	Plan []string
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".json"}
}

// Parse routes data to the parser for ext. stem names the source file and
// is used to derive IDs for levels that do not declare one.
func Parse(data []byte, ext, stem string) ([]Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return ParseYAML(data, stem)
	case ".json":
		return ParseJSON(data, stem)
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
}

// derivedID names the n-th level (0-based) of a file.
func derivedID(stem string, n int) string {
	return fmt.Sprintf("%s-%02d", stem, n+1)
}
