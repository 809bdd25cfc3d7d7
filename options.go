package config

import "github.com/0xalexb/hjarta-config/parser"

// Options holds configuration settings for a configuration module.
type Options struct {
	File    string
	Format  string
	Parser  parser.Parser
	Fetcher DataFetcher
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithFile sets the file to read configuration data from. Unless WithFormat
// or WithParser is also used, the format is inferred from the file extension.
func WithFile(path string) Option {
	return func(opts *Options) {
		opts.File = path
	}
}

// WithFormat sets the format name used to dispatch a parser.
// Registered formats are "json", "toml" and "yaml".
func WithFormat(format string) Option {
	return func(opts *Options) {
		opts.Format = format
	}
}

// WithParser sets an explicit parser, bypassing format dispatch.
func WithParser(formatParser parser.Parser) Option {
	return func(opts *Options) {
		opts.Parser = formatParser
	}
}

// WithFetcher sets an explicit data fetcher, bypassing file reading.
// Combine with WithFormat or WithParser so the data can be parsed.
func WithFetcher(fetcher DataFetcher) Option {
	return func(opts *Options) {
		opts.Fetcher = fetcher
	}
}
