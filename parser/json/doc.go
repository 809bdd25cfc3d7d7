// Package json provides a JSON parser implementation for the parser package.
//
// This package uses encoding/json to decode a document into the nested
// mapping shape consumed by config.FromMap. The document root must be an
// object; a top-level array or scalar is a parse error.
//
// Usage:
//
//	parser := json.NewParser()
//	mapping, err := parser.Parse(data)
package json
