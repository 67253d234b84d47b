package delimited

import (
	"log/slog"

	"github.com/viant/delimited/conv"
	"github.com/viant/tagly/format/text"
)

const (
	//DefaultDelimiter separates columns when no delimiter is configured
	DefaultDelimiter = ","
	//DefaultTagName defines struct tag holding column alias
	DefaultTagName = "csvName"
)

// Options define decoder behavior
type Options struct {
	Delimiter        string
	SkipRows         int
	TagName          string
	CaseFormat       text.CaseFormat
	TimeLayout       string
	Registry         *conv.Registry
	Logger           *slog.Logger
	StopOnZeroRecord bool
}

// Option mutates decoder options
type Option interface{ apply(*Options) }

type optionFn func(*Options)

func (o optionFn) apply(opts *Options) { o(opts) }

// WithDelimiter sets column delimiter
func WithDelimiter(delimiter string) Option {
	return optionFn(func(o *Options) { o.Delimiter = delimiter })
}

// WithSkipRows sets number of lines discarded before header
func WithSkipRows(rows int) Option {
	return optionFn(func(o *Options) { o.SkipRows = rows })
}

// WithTagName sets struct tag used for column alias
func WithTagName(name string) Option {
	return optionFn(func(o *Options) { o.TagName = name })
}

// WithCaseFormat formats field names without alias before matching header
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return optionFn(func(o *Options) { o.CaseFormat = caseFormat })
}

// WithTimeLayout sets time layout for time fields without format tag layout
func WithTimeLayout(layout string) Option {
	return optionFn(func(o *Options) { o.TimeLayout = layout })
}

// WithRegistry sets conversion registry, conv.Default is used otherwise
func WithRegistry(registry *conv.Registry) Option {
	return optionFn(func(o *Options) { o.Registry = registry })
}

// WithLogger sets decoder logger
func WithLogger(logger *slog.Logger) Option {
	return optionFn(func(o *Options) { o.Logger = logger })
}

// WithStopOnZeroRecord makes All stop at the first record equal to zero value
func WithStopOnZeroRecord(flag bool) Option {
	return optionFn(func(o *Options) { o.StopOnZeroRecord = flag })
}

func defaultOptions() Options {
	return Options{
		Delimiter:  DefaultDelimiter,
		TagName:    DefaultTagName,
		CaseFormat: text.CaseFormatUndefined,
		Registry:   conv.Default,
	}
}

func resolveOptions(opts []Option) Options {
	result := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(&result)
	}
	if result.Delimiter == "" {
		result.Delimiter = DefaultDelimiter
	}
	if result.SkipRows < 0 {
		result.SkipRows = 0
	}
	if result.TagName == "" {
		result.TagName = DefaultTagName
	}
	result.CaseFormat = text.NewCaseFormat(string(result.CaseFormat))
	if result.Registry == nil {
		result.Registry = conv.Default
	}
	if result.Logger == nil {
		result.Logger = slog.New(slog.DiscardHandler)
	}
	return result
}
