package parser

import (
	"errors"
	"fmt"
	"strings"

	jsonparser "github.com/0xalexb/hjarta-config/parser/json"
	tomlparser "github.com/0xalexb/hjarta-config/parser/toml"
	yamlparser "github.com/0xalexb/hjarta-config/parser/yaml"
)

// ErrUnknownFormat is returned when no parser is registered for a format name.
var ErrUnknownFormat = errors.New("unknown format")

// Parser defines an interface for turning raw configuration data into a
// nested string-keyed mapping. Values are JSON-like: null, bool, number,
// string, []any, or map[string]any, recursively.
type Parser interface {
	Parse(data []byte) (map[string]any, error)
}

// For returns the parser registered for a format name. Names are matched
// case-insensitively; "yml" is accepted as an alias for "yaml".
//
//nolint:ireturn // format dispatch selects among Parser implementations at runtime.
func For(format string) (Parser, error) {
	switch strings.ToLower(format) {
	case "json":
		return jsonparser.NewParser(), nil
	case "toml":
		return tomlparser.NewParser(), nil
	case "yaml", "yml":
		return yamlparser.NewParser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Formats returns the canonical names of all registered formats, sorted.
func Formats() []string {
	return []string{"json", "toml", "yaml"}
}
