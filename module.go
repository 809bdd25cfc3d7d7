package config

import (
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-config/fetcher/file"
	"github.com/0xalexb/hjarta-config/parser"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// ErrNoSource is returned when a module has neither a file nor a fetcher configured.
var ErrNoSource = errors.New("no configuration source: use WithFile or WithFetcher")

// NewModule creates an Fx module that provides a named *Value.
// The name is used as both the Fx module name and the DI named tag for the
// Value, so several configuration sources can coexist in one container.
// The source is configured with options: WithFile (format inferred from the
// extension), or WithFetcher combined with WithFormat or WithParser.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return fx.Module(name, fx.Provide(
		fx.Annotate(
			func() (*Value, error) {
				return load(&options)
			},
			fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
		),
	))
}

func load(options *Options) (*Value, error) {
	fetcher := options.Fetcher
	format := options.Format

	if fetcher == nil {
		if options.File == "" {
			return nil, ErrNoSource
		}

		fileFetcher, err := file.NewFetcher(options.File)()
		if err != nil {
			return nil, err
		}

		if format == "" {
			format = fileFetcher.Format()
		}

		fetcher = fileFetcher
	}

	formatParser := options.Parser

	if formatParser == nil {
		dispatched, err := parser.For(format)
		if err != nil {
			return nil, err
		}

		formatParser = dispatched
	}

	return Provider(formatParser)(fetcher)
}
