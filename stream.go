package instream

import (
	"strconv"

	"github.com/coregx/instream/pattern"
	"github.com/coregx/instream/unit"
)

// previewUnits is how many units of the contents identify an unnamed stream
// in error messages.
const previewUnits = 32

// Stream is a read cursor over an immutable text.
//
// The offset is the only mutable state and always satisfies
// 0 <= Offset() <= Size(). Offset() == Size() means the stream is exhausted.
type Stream struct {
	codec      unit.Codec
	offset     int
	name       string
	whitespace pattern.Matcher
}

// NewStringStream returns a stream over text whose units are bytes.
func NewStringStream(text string, opts ...Option) *Stream {
	return New(unit.NewBytes(text), opts...)
}

// NewRuneStream returns a stream over text whose units are Unicode code
// points. The code point count is computed once here.
func NewRuneStream(text string, opts ...Option) *Stream {
	return New(unit.NewRunes(text), opts...)
}

// New returns a stream over the text held by codec, addressed in the
// codec's unit.
func New(codec unit.Codec, opts ...Option) *Stream {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Stream{
		codec:      codec,
		offset:     min(max(cfg.offset, 0), codec.Len()),
		name:       cfg.name,
		whitespace: cfg.whitespace,
	}
}

// IsGood reports whether at least one unit remains.
func (s *Stream) IsGood() bool {
	return s.offset < s.codec.Len()
}

// Peek returns the next unit without consuming it.
func (s *Stream) Peek() (string, bool) {
	if !s.IsGood() {
		return "", false
	}
	return s.codec.At(s.offset), true
}

// Extract consumes exactly count units.
//
// If the stream is exhausted ok is false. If fewer than count units remain
// the returned error is an *Error of kind EndOfInput and the offset is left
// where it was. A count below 1 returns the empty string.
func (s *Stream) Extract(count int) (string, bool, error) {
	if !s.IsGood() {
		return "", false, nil
	}
	if count <= 0 {
		return "", true, nil
	}
	available := s.codec.Len() - s.offset
	if count > available {
		return "", false, &Error{
			Kind:           EndOfInput,
			Stream:         s.identity(),
			RequestedUnits: count,
			AvailableUnits: available,
		}
	}
	start := s.offset
	s.offset += count
	return s.codec.Slice(start, s.offset), true, nil
}

// Putback moves the offset one unit back.
func (s *Stream) Putback() error {
	if s.offset == 0 {
		return &Error{Kind: Underflow, Stream: s.identity()}
	}
	s.offset--
	return nil
}

// ExtractUntil consumes units up to the first occurrence of sep at or after
// the offset.
//
// Without options the separator is neither consumed nor returned. When sep
// does not occur, the result is MaxCount units if that many remain, and the
// whole remainder otherwise. When it does occur:
//   - ExtractSep moves the end of the extraction past the separator
//   - MaxCount truncates an extraction that would end beyond offset+MaxCount;
//     a truncated result is returned as is
//   - otherwise DiscardSep drops a consumed separator from the result
//
// ok is false if the stream is exhausted. ExtractUntil panics if sep is
// empty.
func (s *Stream) ExtractUntil(sep string, opts ...UntilOption) (string, bool) {
	if sep == "" {
		panic("instream: ExtractUntil with empty separator")
	}
	if !s.IsGood() {
		return "", false
	}
	cfg := newUntilConfig(opts)
	pos := s.codec.Find(sep, s.offset)
	return s.extractUntil(pos, s.codec.Count(sep), cfg), true
}

// ExtractUntilAny is ExtractUntil where the separator is the leftmost
// occurrence of any of the literals in seps. It also returns the separator
// that was found, or "" if none was.
func (s *Stream) ExtractUntilAny(seps *pattern.Literals, opts ...UntilOption) (string, string, bool) {
	if !s.IsGood() {
		return "", "", false
	}
	cfg := newUntilConfig(opts)
	m, found := seps.MatchBytes(s.codec.Bytes(), s.codec.ByteOffset(s.offset))
	if !found {
		return s.extractUntil(-1, 0, cfg), "", true
	}
	sep := s.codec.Text()[m.Start:m.End]
	return s.extractUntil(s.codec.UnitOffset(m.Start), s.codec.Count(sep), cfg), sep, true
}

// extractUntil carries out a delimited extraction given the unit position
// of the separator (-1 if absent) and its length in units.
func (s *Stream) extractUntil(pos, sepLen int, cfg untilConfig) string {
	start := s.offset
	limited := cfg.maxCount >= 0

	if pos < 0 {
		if limited && start+cfg.maxCount <= s.codec.Len() {
			s.offset = start + cfg.maxCount
		} else {
			s.offset = s.codec.Len()
		}
		return s.codec.Slice(start, s.offset)
	}

	end := pos
	if cfg.extractSep {
		end += sepLen
	}

	if limited && end > start+cfg.maxCount {
		// clamped: DiscardSep does not apply here
		s.offset = start + cfg.maxCount
		return s.codec.Slice(start, s.offset)
	}

	resultEnd := end
	if cfg.extractSep && cfg.discardSep {
		resultEnd -= sepLen
	}
	s.offset = end
	return s.codec.Slice(start, resultEnd)
}

// Offset returns the current offset in units.
func (s *Stream) Offset() int {
	return s.offset
}

// Size returns the total number of units.
func (s *Stream) Size() int {
	return s.codec.Len()
}

// Contents returns the whole text.
func (s *Stream) Contents() string {
	return s.codec.Text()
}

// String returns the whole text, like Contents.
func (s *Stream) String() string {
	return s.codec.Text()
}

// Remainder returns the unread text without consuming it.
func (s *Stream) Remainder() (string, bool) {
	if !s.IsGood() {
		return "", false
	}
	return s.rest(), true
}

// ExtractRemainder consumes and returns the unread text.
func (s *Stream) ExtractRemainder() (string, bool) {
	if !s.IsGood() {
		return "", false
	}
	r := s.rest()
	s.offset = s.codec.Len()
	return r, true
}

// ExtractRegexp searches the unread text with m. The search is not anchored
// at the offset: on a match the cursor moves past the end of the whole
// match, skipping any unmatched text before it, and the text of capture
// group group is returned (0 is the whole match). A group that did not take
// part in the match yields "". Without a match ok is false and the offset
// does not move.
func (s *Stream) ExtractRegexp(m pattern.Matcher, group int) (string, bool) {
	base := s.codec.ByteOffset(s.offset)
	rest := s.codec.Text()[base:]
	match, ok := m.Match(rest, 0)
	if !ok {
		return "", false
	}
	s.offset = s.codec.UnitOffset(base + match.End)
	g, _ := match.Group(rest, group)
	return g, true
}

// ExtractWs consumes leading whitespace as defined by the stream's
// whitespace policy.
func (s *Stream) ExtractWs() (string, bool) {
	return s.ExtractRegexp(s.whitespace, 0)
}

func (s *Stream) rest() string {
	return s.codec.Text()[s.codec.ByteOffset(s.offset):]
}

// identity names the stream in errors.
func (s *Stream) identity() string {
	if s.name != "" {
		return s.name
	}
	if n := s.codec.Len(); n > previewUnits {
		return strconv.Quote(s.codec.Slice(0, previewUnits) + "...")
	}
	return strconv.Quote(s.codec.Text())
}
