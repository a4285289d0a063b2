package source

import "github.com/ardnew/linguini/lang"

// Option applies a configuration option to config.
type Option func(config) config

type config struct {
	commonFile string
	lang       []lang.Option
}

func makeConfig(opts ...Option) config {
	var c config

	for _, opt := range opts {
		if opt != nil {
			c = opt(c)
		}
	}

	return c
}

// WithCommonFile loads the common file from path, an operating system path,
// instead of "{base}.common" next to the language files. Loading fails with
// [lang.ErrCommonNotFound] if path does not exist.
func WithCommonFile(path string) Option {
	return func(c config) config {
		c.commonFile = path

		return c
	}
}

// WithReplacementLevels sets the number of variable resolution rounds.
// See [lang.WithReplacementLevels].
func WithReplacementLevels(n int) Option {
	return WithOptions(lang.WithReplacementLevels(n))
}

// WithOptions passes options through to [lang.New].
func WithOptions(opts ...lang.Option) Option {
	return func(c config) config {
		c.lang = append(c.lang[:len(c.lang):len(c.lang)], opts...)

		return c
	}
}
