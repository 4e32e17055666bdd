// Package unit defines the addressing units a stream can be indexed in.
//
// A Codec knows how to measure, slice and search an immutable text in terms
// of its own unit: raw bytes (Bytes) or Unicode code points (Runes). The
// cursor engine in package instream is written once against this interface,
// so both stream flavours share the same control flow and edge-case policy.
//
// All indices taken and returned by a Codec are unit indices, except
// ByteOffset and UnitOffset which translate between unit and byte space.
package unit

// Codec addresses one immutable text in a specific unit.
//
// A Codec is bound to the text it was created for. Implementations must be
// safe for concurrent reads, since they never mutate after construction.
type Codec interface {
	// Text returns the underlying text.
	Text() string

	// Bytes returns the underlying text as a byte slice shared with the
	// codec. Callers must not modify it.
	Bytes() []byte

	// Len returns the number of units in the text.
	Len() int

	// At returns the unit at index i as a string.
	// i must satisfy 0 <= i < Len().
	At(i int) string

	// Slice returns the units in [i, j).
	// i and j must satisfy 0 <= i <= j <= Len().
	Slice(i, j int) string

	// Find returns the unit index of the first occurrence of sep at or
	// after unit index from, or -1 if sep does not occur there. Only
	// occurrences starting on a unit boundary count.
	Find(sep string, from int) int

	// Count returns the length of s measured in this codec's unit.
	Count(s string) int

	// ByteOffset translates unit index i into a byte offset into Text().
	ByteOffset(i int) int

	// UnitOffset translates byte offset b into a unit index. b must fall
	// on a unit boundary.
	UnitOffset(b int) int
}
