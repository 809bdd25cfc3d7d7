package yaml

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Parser implements parser.Parser for YAML data using goccy/go-yaml.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses YAML data into a nested string-keyed mapping. Mapping nodes
// decoded as map[any]any are normalized to map[string]any so the result has
// a uniform shape regardless of key styles in the document.
func (p *Parser) Parse(data []byte) (map[string]any, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var root map[string]any

	err := yaml.Unmarshal(data, &root)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if root == nil {
		root = map[string]any{}
	}

	return normalizeMapping(root), nil
}

func normalizeMapping(node map[string]any) map[string]any {
	for key, value := range node {
		node[key] = normalize(value)
	}

	return node
}

func normalize(node any) any {
	switch typed := node.(type) {
	case map[string]any:
		return normalizeMapping(typed)
	case map[any]any:
		converted := make(map[string]any, len(typed))
		for key, value := range typed {
			converted[fmt.Sprint(key)] = normalize(value)
		}

		return converted
	case []any:
		for i, item := range typed {
			typed[i] = normalize(item)
		}

		return typed
	default:
		return typed
	}
}
