// Package parser defines the Parser interface consumed by the config package
// and dispatches parser implementations by format name.
//
// Each supported format lives in its own subpackage (json, toml, yaml) and
// produces the same shape: a nested map[string]any whose values are scalars,
// []any sequences, or further nested mappings.
//
// Usage:
//
//	p, err := parser.For("yaml")
//	if err != nil {
//	    // Handle error: format not registered.
//	}
//	mapping, err := p.Parse(data)
package parser
