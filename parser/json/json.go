package json

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Parser implements parser.Parser for JSON data.
type Parser struct{}

// NewParser creates a new JSON parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses JSON data into a nested string-keyed mapping. The document
// root must be a JSON object; numbers decode as float64.
func (p *Parser) Parse(data []byte) (map[string]any, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var root map[string]any

	err := json.Unmarshal(data, &root)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if root == nil {
		root = map[string]any{}
	}

	return root, nil
}
