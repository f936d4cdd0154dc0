package articlemark

// ConvertOptions holds options for markup conversion.
type ConvertOptions struct {
	Config    *RenderConfig
	TrustHTML bool
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ConvertOptions) {
		if config != nil {
			opts.Config = config
		}
	}
}

// WithTrustedHTML keeps literal HTML tags found in the text instead of
// escaping them. The rendered fragment is then sanitized against the
// converter's output vocabulary.
func WithTrustedHTML(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.TrustHTML = enable
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Config: DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
