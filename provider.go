package config

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-config/fetcher/file"
	"github.com/0xalexb/hjarta-config/parser"
)

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Provider returns a function that reads and parses configuration data into
// a Value. The returned function is Fx-friendly: it can be handed to
// fx.Provide together with a Parser and DataFetcher constructor.
func Provider(formatParser parser.Parser) func(DataFetcher) (*Value, error) {
	return func(fetcher DataFetcher) (*Value, error) {
		data, err := fetcher.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		mapping, err := formatParser.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		value := FromMap(mapping)
		slog.Info("configuration loaded", slog.Int("entries", value.Len()))

		return value, nil
	}
}

// Load reads the file at path, dispatches a parser by file extension, and
// builds a Value from the parsed mapping.
func Load(path string) (*Value, error) {
	fetcher, err := file.NewFetcher(path)()
	if err != nil {
		return nil, err
	}

	format := fetcher.Format()
	if format == "" {
		return nil, fmt.Errorf("%w: file %q", parser.ErrUnknownFormat, path)
	}

	formatParser, err := parser.For(format)
	if err != nil {
		return nil, err
	}

	return Provider(formatParser)(fetcher)
}
