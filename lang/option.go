package lang

// DefaultReplacementLevels is the default number of rounds variables are
// substituted into each other.
const DefaultReplacementLevels = 10

// Option applies a configuration option to options.
type Option func(options) options

type options struct {
	common Object
	levels int
}

func makeOptions(opts ...Option) options {
	return apply(options{levels: DefaultReplacementLevels}, opts...)
}

// apply applies multiple options to an options value.
func apply(o options, opts ...Option) options {
	for _, opt := range opts {
		if opt != nil {
			o = opt(o)
		}
	}

	return o
}

// WithReplacementLevels sets the number of rounds variables that reference
// other variables are resolved through. Negative values are rejected by
// [New].
func WithReplacementLevels(n int) Option {
	return func(o options) options {
		o.levels = n

		return o
	}
}

// WithCommon sets the category tree of the common file shared by all
// languages. Its variables are addressed as {{COM:category.item}}.
func WithCommon(tree Object) Option {
	return func(o options) options {
		o.common = tree

		return o
	}
}
