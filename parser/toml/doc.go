// Package toml provides a TOML parser implementation for the parser package.
//
// This package uses github.com/pelletier/go-toml/v2 to decode a document
// into the nested mapping shape consumed by config.FromMap.
//
// Usage:
//
//	parser := toml.NewParser()
//	mapping, err := parser.Parse(data)
package toml
