package msgstyle

// BuildOptions holds options for building a render tree.
type BuildOptions struct {
	Mentions []MentionRange
	Config   *Config
}

// Option is a function that configures BuildOptions.
type Option func(*BuildOptions)

// WithMentions sets the absolute mention ranges of the body.
func WithMentions(mentions ...MentionRange) Option {
	return func(opts *BuildOptions) {
		opts.Mentions = mentions
	}
}

// WithConfig sets a custom Config. The config is copied; options applied
// after it adjust the copy.
func WithConfig(config *Config) Option {
	return func(opts *BuildOptions) {
		if config == nil {
			return
		}
		c := *config
		opts.Config = &c
	}
}

// WithMentionFallback sets whether "@handle" mentions are detected when no
// ranges are supplied.
func WithMentionFallback(enable bool) Option {
	return func(opts *BuildOptions) {
		opts.Config.MentionFallback = enable
	}
}

// WithMaxBodyLength sets the body cap in UTF-16 code units. Zero disables it.
func WithMaxBodyLength(n int) Option {
	return func(opts *BuildOptions) {
		opts.Config.MaxBodyLength = n
	}
}

// defaultBuildOptions returns the default build options.
func defaultBuildOptions() *BuildOptions {
	c := *DefaultConfig()
	return &BuildOptions{
		Config: &c,
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *BuildOptions {
	options := defaultBuildOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
