package ecsbind

import "github.com/rs/zerolog"

// Option configures a query at construction.
type Option func(*options)

type options struct {
	logger zerolog.Logger
	name   string
}

// WithLogger sets the logger a query reports to. Queries are silent by
// default.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithName labels the query in logs and errors. The default label lists
// the component types of its terms.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}
