package longboard

import "github.com/sethierophant/longboard/internal/parser"

// Options holds options for parsing a post body.
type Options struct {
	Filters      []FilterRule
	MaxSpanDepth int
}

// Option is a function that configures Options.
type Option func(*Options)

// WithFilters sets the filter rules applied to the raw text before
// parsing, in the given order.
func WithFilters(rules ...FilterRule) Option {
	return func(opts *Options) {
		opts.Filters = rules
	}
}

// WithMaxSpanDepth sets the inline nesting depth cap. Beyond the cap,
// bold/italic/spoiler delimiters degrade to literal text.
func WithMaxSpanDepth(n int) Option {
	return func(opts *Options) {
		opts.MaxSpanDepth = n
	}
}

// defaultOptions returns the default parse options.
func defaultOptions() *Options {
	return &Options{
		MaxSpanDepth: parser.DefaultMaxSpanDepth,
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *Options {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
