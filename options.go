package instream

import "github.com/coregx/instream/pattern"

// DefaultWhitespace is the whitespace policy used by ExtractWs unless a
// stream is built WithWhitespace: one or more whitespace characters at the
// current offset.
var DefaultWhitespace pattern.Matcher = pattern.MustCompile(`^\s+`)

// Option configures a Stream at construction.
type Option func(*config)

type config struct {
	offset     int
	name       string
	whitespace pattern.Matcher
}

func defaultConfig() config {
	return config{whitespace: DefaultWhitespace}
}

// WithOffset starts the stream at offset n, measured in the stream's unit.
// Offsets outside [0, size] are clamped.
func WithOffset(n int) Option {
	return func(c *config) { c.offset = n }
}

// WithName names the stream in error messages. Without a name, errors
// identify the stream by a quoted preview of its contents.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithWhitespace replaces the whitespace policy of ExtractWs, for example to
// treat comments as whitespace. The matcher should be anchored at the start
// of the haystack; an unanchored one skips whatever precedes its match.
func WithWhitespace(m pattern.Matcher) Option {
	return func(c *config) {
		if m != nil {
			c.whitespace = m
		}
	}
}

// UntilOption configures a single ExtractUntil or ExtractUntilAny call.
type UntilOption func(*untilConfig)

type untilConfig struct {
	maxCount   int // negative means unlimited
	extractSep bool
	discardSep bool
}

func newUntilConfig(opts []UntilOption) untilConfig {
	c := untilConfig{maxCount: -1}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// MaxCount limits the extraction to n units, including the separator when
// ExtractSep is given. A negative n means no limit.
func MaxCount(n int) UntilOption {
	return func(c *untilConfig) { c.maxCount = n }
}

// ExtractSep consumes the separator too and includes it in the result.
func ExtractSep() UntilOption {
	return func(c *untilConfig) { c.extractSep = true }
}

// DiscardSep leaves a separator consumed by ExtractSep out of the result.
// It has no effect without ExtractSep, or when MaxCount cuts the extraction
// short before the end of the separator.
func DiscardSep() UntilOption {
	return func(c *untilConfig) { c.discardSep = true }
}
