package exampaper

// AssembleOptions holds options for document assembly.
type AssembleOptions struct {
	Subject string
	Grade   string
	Config  *Config
}

// Option is a function that configures AssembleOptions.
type Option func(*AssembleOptions)

// WithSubject sets the document subject.
func WithSubject(subject string) Option {
	return func(opts *AssembleOptions) {
		opts.Subject = subject
	}
}

// WithGrade sets the document grade level.
func WithGrade(grade string) Option {
	return func(opts *AssembleOptions) {
		opts.Grade = grade
	}
}

// WithConfig sets a custom Config.
func WithConfig(config *Config) Option {
	return func(opts *AssembleOptions) {
		opts.Config = config
	}
}

// WithMeasurer sets a custom font measurer on a fresh Config.
func WithMeasurer(m Measurer) Option {
	return func(opts *AssembleOptions) {
		opts.Config = &Config{Measurer: m}
	}
}

// defaultAssembleOptions returns the default assembly options.
func defaultAssembleOptions() *AssembleOptions {
	return &AssembleOptions{
		Config: DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *AssembleOptions {
	options := defaultAssembleOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.Config == nil {
		options.Config = DefaultConfig()
	}
	return options
}
