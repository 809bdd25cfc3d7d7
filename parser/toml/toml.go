package toml

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Parser implements parser.Parser for TOML data using pelletier/go-toml.
type Parser struct{}

// NewParser creates a new TOML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses TOML data into a nested string-keyed mapping. Tables decode
// as map[string]any; arrays of tables, which go-toml decodes as
// []map[string]any, are normalized to []any so sequences have a uniform
// shape.
func (p *Parser) Parse(data []byte) (map[string]any, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var root map[string]any

	err := toml.Unmarshal(data, &root)
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
	case []map[string]any:
		items := make([]any, len(typed))
		for i, item := range typed {
			items[i] = normalizeMapping(item)
		}

		return items
	case []any:
		for i, item := range typed {
			typed[i] = normalize(item)
		}

		return typed
	default:
		return typed
	}
}
