package config

import (
	"fmt"
	"io"
	"strings"
)

// String renders every leaf path and its value, one per line, with an entry
// count header. Paths are right-aligned to the longest path so values line
// up. Implements fmt.Stringer.
func (v *Value) String() string {
	var rendered strings.Builder

	// strings.Builder writes never fail.
	_ = v.Render(&rendered, 0)

	return rendered.String()
}

// Render writes the same listing as String to w. A limit greater than zero
// truncates the listing after limit entries and appends a marker naming how
// many entries were omitted.
func (v *Value) Render(w io.Writer, limit int) error {
	paths := v.Keys()

	_, err := fmt.Fprintf(w, "%d entries\n", len(paths))
	if err != nil {
		return err
	}

	width := 0

	for _, path := range paths {
		if len(path) > width {
			width = len(path)
		}
	}

	shown := paths
	if limit > 0 && len(paths) > limit {
		shown = paths[:limit]
	}

	for _, path := range shown {
		value, err := v.Get(path)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(w, "%*s = %v\n", width, path, value)
		if err != nil {
			return err
		}
	}

	if len(shown) < len(paths) {
		_, err := fmt.Fprintf(w, "... (%d more)\n", len(paths)-len(shown))
		if err != nil {
			return err
		}
	}

	return nil
}
