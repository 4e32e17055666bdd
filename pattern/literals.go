package pattern

import (
	"errors"

	"github.com/coregx/ahocorasick"
)

// ErrNoLiterals is returned by NewLiterals when no non-empty literal is given.
var ErrNoLiterals = errors.New("pattern: no non-empty literals")

// Literals is a Matcher for a fixed set of literal strings, searched in a
// single pass with an Aho-Corasick automaton. Its matches carry only
// group 0.
type Literals struct {
	words []string
	auto  *ahocorasick.Automaton
}

// NewLiterals builds a matcher for the given literals. Empty literals are
// skipped.
func NewLiterals(words ...string) (*Literals, error) {
	builder := ahocorasick.NewBuilder()
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		builder.AddPattern([]byte(w))
		kept = append(kept, w)
	}
	if len(kept) == 0 {
		return nil, ErrNoLiterals
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Literals{words: kept, auto: auto}, nil
}

// MustLiterals is like NewLiterals but panics on error.
func MustLiterals(words ...string) *Literals {
	l, err := NewLiterals(words...)
	if err != nil {
		panic("pattern: NewLiterals: " + err.Error())
	}
	return l
}

// Words returns the literals the matcher searches for.
func (l *Literals) Words() []string {
	return append([]string(nil), l.words...)
}

// Match implements Matcher.
func (l *Literals) Match(haystack string, origin int) (Match, bool) {
	return l.MatchBytes([]byte(haystack), origin)
}

// MatchBytes is Match over a byte slice. Callers that search the same text
// repeatedly should keep one slice and use MatchBytes to avoid converting
// the haystack on every call.
func (l *Literals) MatchBytes(haystack []byte, origin int) (Match, bool) {
	if origin < 0 || origin > len(haystack) {
		return Match{}, false
	}
	m := l.auto.Find(haystack, origin)
	if m == nil {
		return Match{}, false
	}
	return Match{Start: m.Start, End: m.End, Groups: []int{m.Start, m.End}}, true
}
