package unit

import (
	"sort"
	"unicode/utf8"

	"github.com/coregx/coregex/simd"
)

// checkpointStride is the number of code points between two entries of the
// byte offset index kept by Runes.
const checkpointStride = 64

// Runes indexes a text by Unicode code points.
//
// Counting code points is linear in the text, so the total is computed once
// at construction. Alongside it Runes keeps the byte offset of every
// checkpointStride-th code point, which bounds each unit-to-byte translation
// to a binary search plus a scan of at most checkpointStride code points.
//
// Invalid UTF-8 sequences count as one unit per offending byte, matching
// utf8.RuneCountInString.
type Runes struct {
	text        string
	data        []byte
	count       int
	checkpoints []int // checkpoints[k] = byte offset of code point k*checkpointStride
}

// NewRunes returns a code point codec for text.
func NewRunes(text string) *Runes {
	c := &Runes{
		text:        text,
		data:        []byte(text),
		checkpoints: make([]int, 0, len(text)/checkpointStride+1),
	}
	n := 0
	for b := range text {
		if n%checkpointStride == 0 {
			c.checkpoints = append(c.checkpoints, b)
		}
		n++
	}
	if n%checkpointStride == 0 {
		c.checkpoints = append(c.checkpoints, len(text))
	}
	c.count = n
	return c
}

// Text returns the underlying text.
func (c *Runes) Text() string { return c.text }

// Bytes returns the text as bytes.
func (c *Runes) Bytes() []byte { return c.data }

// Len returns the cached code point count.
func (c *Runes) Len() int { return c.count }

// At returns the encoded code point at unit index i.
func (c *Runes) At(i int) string {
	b := c.ByteOffset(i)
	_, w := utf8.DecodeRuneInString(c.text[b:])
	return c.text[b : b+w]
}

// Slice returns the code points in [i, j).
func (c *Runes) Slice(i, j int) string {
	bi := c.ByteOffset(i)
	return c.text[bi:c.advance(bi, j-i)]
}

// Find searches for sep in byte space and maps the hit back to a code point
// index. A separator that is not valid UTF-8 can match inside an encoded
// code point; such hits are skipped.
func (c *Runes) Find(sep string, from int) int {
	if from > c.count {
		return -1
	}
	needle := []byte(sep)
	b := c.ByteOffset(from)
	for b <= len(c.data) {
		pos := simd.Memmem(c.data[b:], needle)
		if pos < 0 {
			return -1
		}
		hit := b + pos
		if u := c.UnitOffset(hit); c.ByteOffset(u) == hit {
			return u
		}
		b = hit + 1
	}
	return -1
}

// Count returns the number of code points in s.
func (c *Runes) Count(s string) int { return utf8.RuneCountInString(s) }

// ByteOffset translates code point index i into a byte offset.
// Indices past the end map to len(text).
func (c *Runes) ByteOffset(i int) int {
	if i >= c.count {
		return len(c.text)
	}
	if i <= 0 {
		return 0
	}
	k := i / checkpointStride
	return c.advance(c.checkpoints[k], i-k*checkpointStride)
}

// UnitOffset translates byte offset b into a code point index.
func (c *Runes) UnitOffset(b int) int {
	if b >= len(c.text) {
		return c.count
	}
	if b <= 0 {
		return 0
	}
	// largest checkpoint not after b
	k := sort.Search(len(c.checkpoints), func(k int) bool { return c.checkpoints[k] > b }) - 1
	return k*checkpointStride + utf8.RuneCountInString(c.text[c.checkpoints[k]:b])
}

// advance returns the byte offset reached by stepping n code points forward
// from byte offset b.
func (c *Runes) advance(b, n int) int {
	for ; n > 0 && b < len(c.text); n-- {
		_, w := utf8.DecodeRuneInString(c.text[b:])
		b += w
	}
	return b
}
