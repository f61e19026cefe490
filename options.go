package mdview

// Option configures parsing behavior.
type Option func(*parseConfig)

type parseConfig struct {
	validate    bool
	frontMatter bool
}

func newParseConfig(opts []Option) parseConfig {
	cfg := parseConfig{validate: true, frontMatter: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithValidation enables or disables UTF-8/binary input validation.
func WithValidation(enabled bool) Option {
	return func(cfg *parseConfig) {
		cfg.validate = enabled
	}
}

// WithFrontMatter enables or disables front matter stripping.
func WithFrontMatter(enabled bool) Option {
	return func(cfg *parseConfig) {
		cfg.frontMatter = enabled
	}
}
