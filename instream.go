// Package instream provides forward-scanning read cursors over an immutable
// in-memory text, meant as the bottom layer of hand-written lexers and
// parsers.
//
// A Stream holds a text and a single offset into it. Extraction methods read
// from the offset and advance it; nothing else ever changes. Two addressing
// modes share one implementation:
//   - NewStringStream counts offsets and lengths in bytes
//   - NewRuneStream counts them in Unicode code points
//
// Both are the same cursor engine driven by a different unit.Codec, so they
// behave identically on pure ASCII input.
//
// Basic usage:
//
//	s := instream.NewStringStream("key = value; rest")
//
//	key, _ := s.ExtractUntil("=")                     // "key "
//	s.Extract(1)                                      // "="
//	s.ExtractWs()                                     // " "
//	val, _ := s.ExtractUntil(";", instream.ExtractSep(), instream.DiscardSep())
//	// val == "value", the ";" is consumed but not returned
//
//	rest, _ := s.Remainder() // " rest", the offset does not move
//
// Fixed-count extraction is all-or-nothing:
//
//	s := instream.NewRuneStream("Löræm")
//	if _, _, err := s.Extract(6); errors.Is(err, instream.ErrEndOfInput) {
//	    // s.Offset() is still 0
//	}
//
// Pattern extraction searches the unread text with a pattern.Matcher; the
// match need not start at the offset, and the cursor lands just past it:
//
//	s := instream.NewStringStream("width: 12px")
//	n, _ := s.ExtractRegexp(pattern.MustCompile(`(\d+)px`), 1) // "12"
//
// Streams are not safe for concurrent use.
package instream

import "github.com/coregx/instream/pattern"

// Cursor is the operation set shared by every stream flavour.
type Cursor interface {
	// IsGood reports whether at least one unit remains.
	IsGood() bool

	// Peek returns the next unit without consuming it.
	// ok is false if the stream is exhausted.
	Peek() (unit string, ok bool)

	// Extract consumes exactly count units. ok is false if the stream is
	// exhausted. If units remain but fewer than count, Extract returns an
	// *Error of kind EndOfInput and the offset does not move.
	Extract(count int) (s string, ok bool, err error)

	// Putback moves the offset one unit back. At offset 0 it returns an
	// *Error of kind Underflow.
	Putback() error

	// ExtractUntil consumes units up to the separator sep.
	// ok is false if the stream is exhausted.
	ExtractUntil(sep string, opts ...UntilOption) (s string, ok bool)
}

// Seekable is a Cursor over a fully materialized text.
type Seekable interface {
	Cursor

	// Offset returns the current offset in units.
	Offset() int

	// Size returns the total number of units.
	Size() int

	// Contents returns the whole text regardless of the offset.
	Contents() string

	// Remainder returns the unread text without consuming it.
	Remainder() (s string, ok bool)

	// ExtractRemainder consumes and returns the unread text.
	ExtractRemainder() (s string, ok bool)
}

// PatternCursor is a Seekable that can also extract by pattern.
type PatternCursor interface {
	Seekable

	// ExtractRegexp searches the unread text with m and, on a match,
	// advances past it and returns capture group group.
	ExtractRegexp(m pattern.Matcher, group int) (s string, ok bool)

	// ExtractWs consumes leading whitespace as defined by the stream's
	// whitespace policy.
	ExtractWs() (s string, ok bool)

	// ExtractUntilAny is ExtractUntil with a set of alternative separators.
	ExtractUntilAny(seps *pattern.Literals, opts ...UntilOption) (s, sep string, ok bool)
}

var (
	_ Cursor        = (*Stream)(nil)
	_ Seekable      = (*Stream)(nil)
	_ PatternCursor = (*Stream)(nil)
)
