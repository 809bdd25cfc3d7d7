// Package yaml provides a YAML parser implementation for the parser package.
//
// This package uses github.com/goccy/go-yaml to decode a document into the
// nested mapping shape consumed by config.FromMap. Non-string mapping keys
// are stringified during normalization.
//
// Usage:
//
//	parser := yaml.NewParser()
//	mapping, err := parser.Parse(data)
package yaml
