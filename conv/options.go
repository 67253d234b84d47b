package conv

// Options represents conversion options
type Options struct {
	//TimeLayout used for time.Time targets, RFC3339 when empty
	TimeLayout string
}

// Option represents conversion option
type Option func(o *Options)

func (o *Options) apply(opts []Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
}

// WithTimeLayout sets time layout used to parse time.Time values
func WithTimeLayout(layout string) Option {
	return func(o *Options) {
		if layout != "" {
			o.TimeLayout = layout
		}
	}
}
