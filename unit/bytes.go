package unit

import "github.com/coregx/coregex/simd"

// Bytes indexes a text by raw bytes.
type Bytes struct {
	text string
	data []byte // text as bytes, searched by Find
}

// NewBytes returns a byte codec for text.
func NewBytes(text string) *Bytes {
	return &Bytes{text: text, data: []byte(text)}
}

// Text returns the underlying text.
func (c *Bytes) Text() string { return c.text }

// Bytes returns the text as bytes.
func (c *Bytes) Bytes() []byte { return c.data }

// Len returns len(text).
func (c *Bytes) Len() int { return len(c.text) }

// At returns the single byte at i.
func (c *Bytes) At(i int) string { return c.text[i : i+1] }

// Slice returns text[i:j].
func (c *Bytes) Slice(i, j int) string { return c.text[i:j] }

// Find searches for sep with the SIMD-accelerated memmem.
func (c *Bytes) Find(sep string, from int) int {
	if from > len(c.text) {
		return -1
	}
	pos := simd.Memmem(c.data[from:], []byte(sep))
	if pos < 0 {
		return -1
	}
	return from + pos
}

// Count returns len(s).
func (c *Bytes) Count(s string) int { return len(s) }

// ByteOffset is the identity for byte units.
func (c *Bytes) ByteOffset(i int) int { return i }

// UnitOffset is the identity for byte units.
func (c *Bytes) UnitOffset(b int) int { return b }
